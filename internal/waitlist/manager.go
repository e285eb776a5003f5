package waitlist

import (
	"context"
	"fmt"

	"github.com/jadelounge/JL-BookingService/internal/domain"
)

// Manager поддерживает FIFO-очередь ожидающих запросов на ключ
// (дата, время, комната) и продвигает самую раннюю запись при
// освобождении слота
//
// Позиция в очереди всегда выводится из порядка created_at заново,
// отдельный счетчик не хранится и не может разъехаться. Вызовы
// добавления и продвижения для одного ключа должны выполняться
// внутри сериализуемой транзакции вызывающего
type Manager struct {
	repo   ReservationRepository
	logger Logger
}

// NewManager создает новый менеджер листа ожидания
func NewManager(repo ReservationRepository, logger Logger) *Manager {
	return &Manager{
		repo:   repo,
		logger: logger,
	}
}

// Add ставит бронирование в лист ожидания ключа и возвращает
// присвоенную позицию: количество уже ожидающих плюс один
func (m *Manager) Add(ctx context.Context, res *domain.Reservation) (*domain.Reservation, int, error) {
	key := res.Key()

	waiting, err := m.repo.GetWaitlisted(ctx, key)
	if err != nil {
		m.logger.Error("Waitlist.Add: failed to get waitlist for room=%s date=%s time=%s: %v",
			key.RoomType, key.Date.Format(domain.DateFormat), key.Time, err)
		return nil, 0, fmt.Errorf("%w: Add - get waitlist: %v", ErrInternal, err)
	}

	res.Status = domain.StatusWaitlisted
	created, err := m.repo.Create(ctx, res)
	if err != nil {
		m.logger.Error("Waitlist.Add: failed to create waitlisted reservation: %v", err)
		return nil, 0, fmt.Errorf("%w: Add - create reservation: %v", ErrInternal, err)
	}

	position := len(waiting) + 1
	m.logger.Info("Waitlist.Add: reservation id=%d queued at position %d for room=%s date=%s time=%s",
		created.ID, position, key.RoomType, key.Date.Format(domain.DateFormat), key.Time)

	return created, position, nil
}

// Position возвращает текущую позицию бронирования в очереди ключа
// Пересчитывается на каждом чтении: удаление ранней записи автоматически
// сдвигает все последующие позиции вниз без ремонта счетчиков
func (m *Manager) Position(ctx context.Context, res *domain.Reservation) (int, error) {
	waiting, err := m.repo.GetWaitlisted(ctx, res.Key())
	if err != nil {
		return 0, fmt.Errorf("%w: Position - get waitlist: %v", ErrInternal, err)
	}

	for i, entry := range waiting {
		if entry.ID == res.ID {
			return i + 1, nil
		}
	}

	return 0, ErrNotOnWaitlist
}

// Promote продвигает самую раннюю запись листа ожидания ключа в confirmed
// и возвращает её. Возвращает nil без ошибки, если очередь пуста.
// Это единственный механизм продвижения - частичного или пакетного нет
func (m *Manager) Promote(ctx context.Context, key domain.SlotKey) (*domain.Reservation, error) {
	waiting, err := m.repo.GetWaitlisted(ctx, key)
	if err != nil {
		m.logger.Error("Waitlist.Promote: failed to get waitlist for room=%s date=%s time=%s: %v",
			key.RoomType, key.Date.Format(domain.DateFormat), key.Time, err)
		return nil, fmt.Errorf("%w: Promote - get waitlist: %v", ErrInternal, err)
	}

	if len(waiting) == 0 {
		m.logger.Info("Waitlist.Promote: waitlist empty for room=%s date=%s time=%s",
			key.RoomType, key.Date.Format(domain.DateFormat), key.Time)
		return nil, nil
	}

	earliest := waiting[0]
	if err := m.repo.UpdateStatus(ctx, earliest.ID, domain.StatusConfirmed); err != nil {
		m.logger.Error("Waitlist.Promote: failed to confirm reservation id=%d: %v", earliest.ID, err)
		return nil, fmt.Errorf("%w: Promote - update status: %v", ErrInternal, err)
	}

	earliest.Status = domain.StatusConfirmed
	m.logger.Info("Waitlist.Promote: reservation id=%d promoted to confirmed for room=%s date=%s time=%s",
		earliest.ID, key.RoomType, key.Date.Format(domain.DateFormat), key.Time)

	return earliest, nil
}

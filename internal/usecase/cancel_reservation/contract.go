package cancel_reservation

import (
	"context"

	"github.com/jadelounge/JL-BookingService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Cancel(ctx context.Context, id int64) error
}

// WaitlistManager интерфейс менеджера листа ожидания
type WaitlistManager interface {
	Promote(ctx context.Context, key domain.SlotKey) (*domain.Reservation, error)
}

// Notifier интерфейс клиента очереди уведомлений
// Доставка best-effort: ошибки логируются и не откатывают отмену
type Notifier interface {
	NotifyCancelled(ctx context.Context, res *domain.Reservation) error
	NotifyPromoted(ctx context.Context, res *domain.Reservation) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

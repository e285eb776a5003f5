package create_reservation

import (
	"context"
	"time"

	"github.com/jadelounge/JL-BookingService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetByDateAndRooms(ctx context.Context, date time.Time, roomTypes []domain.RoomType, includeInactive bool) ([]*domain.Reservation, error)
}

// BlockedSlotRepository интерфейс репозитория административных блокировок
type BlockedSlotRepository interface {
	GetByDateAndRoom(ctx context.Context, date time.Time, roomType domain.RoomType) ([]*domain.BlockedSlot, error)
}

// WaitlistManager интерфейс менеджера листа ожидания
type WaitlistManager interface {
	Add(ctx context.Context, res *domain.Reservation) (*domain.Reservation, int, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

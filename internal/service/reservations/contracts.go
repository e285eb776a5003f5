package reservations

import (
	"context"
	"time"

	"github.com/jadelounge/JL-BookingService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error)
	GetByDateAndRooms(ctx context.Context, date time.Time, roomTypes []domain.RoomType, includeInactive bool) ([]*domain.Reservation, error)
}

// WaitlistManager интерфейс менеджера листа ожидания
type WaitlistManager interface {
	Position(ctx context.Context, res *domain.Reservation) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_available_slots

import (
	"context"
	"time"

	"github.com/jadelounge/JL-BookingService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByDateAndRooms(ctx context.Context, date time.Time, roomTypes []domain.RoomType, includeInactive bool) ([]*domain.Reservation, error)
}

// BlockedSlotRepository интерфейс репозитория блокировок слотов
type BlockedSlotRepository interface {
	GetByDateAndRoom(ctx context.Context, date time.Time, roomType domain.RoomType) ([]*domain.BlockedSlot, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
	Location() *time.Location
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

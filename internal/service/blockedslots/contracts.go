package blockedslots

import (
	"context"
	"time"

	"github.com/jadelounge/JL-BookingService/internal/domain"
)

// BlockedSlotRepository интерфейс репозитория блокировок слотов
type BlockedSlotRepository interface {
	Create(ctx context.Context, block *domain.BlockedSlot) (*domain.BlockedSlot, error)
	GetByDateAndRoom(ctx context.Context, date time.Time, roomType domain.RoomType) ([]*domain.BlockedSlot, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

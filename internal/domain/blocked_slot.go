package domain

import (
	"time"

	"github.com/jadelounge/JL-BookingService/pkg/types"
)

// BlockedSlot административная блокировка временного окна
// Не участвует в листе ожидания - просто исключает диапазон
// из рассмотрения при проверке доступности
type BlockedSlot struct {
	ID        int64
	RoomType  RoomType
	BlockDate time.Time // дата без времени
	StartTime types.TimeString
	EndTime   types.TimeString
	Reason    *string

	CreatedAt time.Time
}

package get_blocked_slots

import (
	"context"

	"github.com/jadelounge/JL-BookingService/internal/service/blockedslots/models"
)

type BlockedSlotService interface {
	List(ctx context.Context, req *models.GetBlockedSlotsRequest) (*models.BlockedSlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

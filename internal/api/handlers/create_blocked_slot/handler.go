package create_blocked_slot

import (
	"errors"
	"net/http"

	"github.com/jadelounge/JL-BookingService/internal/api/handlers"
	"github.com/jadelounge/JL-BookingService/internal/service/blockedslots"
	"github.com/jadelounge/JL-BookingService/internal/service/blockedslots/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные параметры блокировки"
	msgInvalidTimeRange   = "некорректный временной диапазон блокировки"
)

type Handler struct {
	service BlockedSlotService
	logger  Logger
}

func NewHandler(service BlockedSlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/blocked-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBlockedSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blocked-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, blockedslots.ErrInvalidTimeRange):
			h.logger.Warn("POST /admin/blocked-slots - Invalid time range: room=%s, error=%v", req.RoomType, err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, blockedslots.ErrInvalidInput):
			h.logger.Warn("POST /admin/blocked-slots - Invalid input: room=%s, error=%v", req.RoomType, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/blocked-slots - Failed to create block: room=%s, error=%v", req.RoomType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/blocked-slots - Block created: block_id=%d, room=%s, date=%s",
		result.ID, result.RoomType, result.BlockDate)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

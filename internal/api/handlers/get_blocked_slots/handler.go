package get_blocked_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jadelounge/JL-BookingService/internal/api/handlers"
	"github.com/jadelounge/JL-BookingService/internal/service/blockedslots"
	"github.com/jadelounge/JL-BookingService/internal/service/blockedslots/models"
)

const (
	msgMissingDate  = "отсутствует параметр date"
	msgInvalidInput = "некорректные параметры запроса"
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

// Handle GET /api/v1/admin/rooms/{roomType}/blocked-slots?date=2026-09-05
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomType := vars["roomType"]

	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /admin/rooms/{roomType}/blocked-slots - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	req := &models.GetBlockedSlotsRequest{
		RoomType: roomType,
		Date:     date,
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, blockedslots.ErrInvalidInput):
			h.logger.Warn("GET /admin/rooms/{roomType}/blocked-slots - Invalid input: room=%s, error=%v", roomType, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /admin/rooms/{roomType}/blocked-slots - Failed: room=%s, error=%v", roomType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/rooms/{roomType}/blocked-slots - Fetched %d blocks: room=%s, date=%s",
		len(result.BlockedSlots), roomType, date)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/jadelounge/JL-BookingService/internal/api/handlers"
	"github.com/jadelounge/JL-BookingService/internal/domain"
	getAvailableSlots "github.com/jadelounge/JL-BookingService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate     = "отсутствует параметр date"
	msgInvalidDuration = "некорректный параметр durationHours"
	msgInvalidInput    = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomType}/available-slots?date=2026-09-05&durationHours=2
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomType := vars["roomType"]

	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /rooms/{roomType}/available-slots - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	req := &getAvailableSlots.Request{
		RoomType: domain.RoomType(roomType),
		Date:     date,
	}

	if durationStr := r.URL.Query().Get("durationHours"); durationStr != "" {
		duration, err := strconv.ParseFloat(durationStr, 64)
		if err != nil {
			h.logger.Warn("GET /rooms/{roomType}/available-slots - Invalid durationHours: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
		req.DurationHours = duration
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{roomType}/available-slots - Invalid input: room=%s, error=%v", roomType, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /rooms/{roomType}/available-slots - Failed: room=%s, error=%v", roomType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{roomType}/available-slots - Fetched slots: room=%s, date=%s, available=%d",
		roomType, date, len(result.AvailableSlots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

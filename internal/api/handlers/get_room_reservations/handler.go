package get_room_reservations

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jadelounge/JL-BookingService/internal/api/handlers"
	"github.com/jadelounge/JL-BookingService/internal/service/reservations"
	"github.com/jadelounge/JL-BookingService/internal/service/reservations/models"
)

const (
	msgMissingDate  = "отсутствует параметр date"
	msgInvalidInput = "некорректные параметры запроса"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/rooms/{roomType}/reservations?date=2026-09-05&includeInactive=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomType := vars["roomType"]

	query := r.URL.Query()

	date := query.Get("date")
	if date == "" {
		h.logger.Warn("GET /admin/rooms/{roomType}/reservations - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	req := &models.GetRoomReservationsRequest{
		RoomType:        roomType,
		Date:            date,
		IncludeInactive: query.Get("includeInactive") == "true",
	}

	result, err := h.service.GetRoomReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /admin/rooms/{roomType}/reservations - Invalid input: room=%s, error=%v", roomType, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /admin/rooms/{roomType}/reservations - Failed: room=%s, error=%v", roomType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/rooms/{roomType}/reservations - Fetched %d reservations: room=%s, date=%s",
		len(result.Reservations), roomType, date)
	handlers.RespondJSON(w, http.StatusOK, result)
}

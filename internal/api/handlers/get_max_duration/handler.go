package get_max_duration

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/jadelounge/JL-BookingService/internal/api/handlers"
	"github.com/jadelounge/JL-BookingService/internal/domain"
	getMaxDuration "github.com/jadelounge/JL-BookingService/internal/usecase/get_max_duration"
)

const (
	msgMissingDate      = "отсутствует параметр date"
	msgMissingStartTime = "отсутствует параметр startTime"
	msgInvalidPartySize = "некорректный параметр partySize"
	msgInvalidInput     = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetMaxDurationUseCase
	logger  Logger
}

func NewHandler(useCase GetMaxDurationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomType}/max-duration?date=2026-09-05&startTime=20:00&partySize=4
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomType := vars["roomType"]

	query := r.URL.Query()

	date := query.Get("date")
	if date == "" {
		h.logger.Warn("GET /rooms/{roomType}/max-duration - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	startTime := query.Get("startTime")
	if startTime == "" {
		h.logger.Warn("GET /rooms/{roomType}/max-duration - Missing startTime parameter")
		handlers.RespondBadRequest(w, msgMissingStartTime)
		return
	}

	partySize, err := strconv.Atoi(query.Get("partySize"))
	if err != nil {
		h.logger.Warn("GET /rooms/{roomType}/max-duration - Invalid partySize: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPartySize)
		return
	}

	req := &getMaxDuration.Request{
		RoomType:  domain.RoomType(roomType),
		Date:      date,
		StartTime: startTime,
		PartySize: partySize,
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getMaxDuration.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{roomType}/max-duration - Invalid input: room=%s, error=%v", roomType, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /rooms/{roomType}/max-duration - Failed: room=%s, error=%v", roomType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{roomType}/max-duration - Calculated: room=%s, start=%s, hours=%.1f",
		roomType, startTime, result.MaxDurationHours)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

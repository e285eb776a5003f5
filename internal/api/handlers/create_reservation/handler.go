package create_reservation

import (
	"errors"
	"net/http"

	"github.com/jadelounge/JL-BookingService/internal/api/handlers"
	"github.com/jadelounge/JL-BookingService/internal/api/middleware"
	createReservation "github.com/jadelounge/JL-BookingService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMissingUserID       = "пользователь не аутентифицирован"
	msgInvalidDateOrTime   = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInput        = "некорректные параметры бронирования"
	msgInvalidBookingTime  = "время вне часов работы заведения"
	msgOutsideWindow       = "дата бронирования за пределами окна в 14 дней"
	msgSlotInPast          = "выбранный слот уже прошел"
	msgPartySizeLimit      = "для компании менее 3 человек бар доступен не более чем на 2 часа"
	msgConcurrencyConflict = "слот только что заняли, попробуйте еще раз"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
// Владелец бронирования берется из контекста аутентификации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReservation.ErrInvalidBookingTime):
			h.logger.Warn("POST /reservations - Time outside operating hours: user_id=%d, room=%s", userID, req.RoomType)
			handlers.RespondBadRequest(w, msgInvalidBookingTime)

		case errors.Is(err, createReservation.ErrOutsideBookingWindow):
			h.logger.Warn("POST /reservations - Date outside booking window: user_id=%d, date=%s", userID, req.ReservationDate)
			handlers.RespondBadRequest(w, msgOutsideWindow)

		case errors.Is(err, createReservation.ErrInPast):
			h.logger.Warn("POST /reservations - Slot in the past: user_id=%d, date=%s %s", userID, req.ReservationDate, req.StartTime)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, createReservation.ErrPartySizeLimit):
			h.logger.Warn("POST /reservations - Party size limit: user_id=%d, party_size=%d", userID, req.PartySize)
			handlers.RespondBadRequest(w, msgPartySizeLimit)

		case errors.Is(err, createReservation.ErrConcurrencyConflict):
			h.logger.Warn("POST /reservations - Concurrency conflict: user_id=%d, date=%s %s", userID, req.ReservationDate, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgConcurrencyConflict)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%d, user_id=%d, status=%s",
		result.ID, userID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

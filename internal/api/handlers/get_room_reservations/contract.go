package get_room_reservations

import (
	"context"

	"github.com/jadelounge/JL-BookingService/internal/service/reservations/models"
)

type ReservationService interface {
	GetRoomReservations(ctx context.Context, req *models.GetRoomReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

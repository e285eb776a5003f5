package cancel_reservation

import (
	cancelReservation "github.com/jadelounge/JL-BookingService/internal/usecase/cancel_reservation"
)

// CancelReservationResponse HTTP response model
type CancelReservationResponse struct {
	ReservationID         int64  `json:"reservationId"`
	Status                string `json:"status"`
	PromotedReservationID int64  `json:"promotedReservationId,omitempty"`
	PromotedUserID        int64  `json:"promotedUserId,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelReservation.Response) *CancelReservationResponse {
	return &CancelReservationResponse{
		ReservationID:         resp.ReservationID,
		Status:                resp.Status,
		PromotedReservationID: resp.PromotedReservationID,
		PromotedUserID:        resp.PromotedUserID,
	}
}

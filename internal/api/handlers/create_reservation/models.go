package create_reservation

import (
	"time"

	"github.com/jadelounge/JL-BookingService/internal/domain"
	createReservation "github.com/jadelounge/JL-BookingService/internal/usecase/create_reservation"
	"github.com/jadelounge/JL-BookingService/pkg/types"
)

// CreateReservationRequest HTTP request model
// Владелец бронирования определяется контекстом аутентификации, не телом
type CreateReservationRequest struct {
	RoomType        string  `json:"roomType"`        // bar, mahjong, poker
	ReservationDate string  `json:"reservationDate"` // "2026-09-05"
	StartTime       string  `json:"startTime"`       // "20:30"
	EndTime         string  `json:"endTime,omitempty"`
	PartySize       int     `json:"partySize"`
	Notes           *string `json:"notes,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID               int64   `json:"id"`
	UserID           int64   `json:"userId"`
	RoomType         string  `json:"roomType"`
	ReservationDate  string  `json:"reservationDate"`
	StartTime        string  `json:"startTime"`
	EndTime          string  `json:"endTime"`
	PartySize        int     `json:"partySize"`
	Status           string  `json:"status"`
	Waitlisted       bool    `json:"waitlisted"`
	WaitlistPosition int     `json:"waitlistPosition,omitempty"`
	Notes            *string `json:"notes,omitempty"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) (*createReservation.Request, error) {
	reservationDate, err := time.Parse(domain.DateFormat, r.ReservationDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	var endTime types.TimeString
	if r.EndTime != "" {
		endTime, err = types.NewTimeStringFromString(r.EndTime)
		if err != nil {
			return nil, err
		}
	}

	return &createReservation.Request{
		UserID:    userID,
		RoomType:  domain.RoomType(r.RoomType),
		Date:      reservationDate,
		StartTime: startTime,
		EndTime:   endTime,
		PartySize: r.PartySize,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:               resp.ID,
		UserID:           resp.UserID,
		RoomType:         string(resp.RoomType),
		ReservationDate:  resp.Date.Format(domain.DateFormat),
		StartTime:        resp.StartTime.String(),
		EndTime:          resp.EndTime.String(),
		PartySize:        resp.PartySize,
		Status:           resp.Status,
		Waitlisted:       resp.Waitlisted,
		WaitlistPosition: resp.WaitlistPosition,
		Notes:            resp.Notes,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}

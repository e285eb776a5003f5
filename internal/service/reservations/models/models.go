package models

import (
	"errors"
	"time"

	"github.com/jadelounge/JL-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// GetUserReservationsRequest запрос на получение бронирований пользователя
type GetUserReservationsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// GetRoomReservationsRequest запрос на получение бронирований зала на дату
type GetRoomReservationsRequest struct {
	RoomType        string `json:"roomType"`
	Date            string `json:"date"`
	IncludeInactive bool   `json:"includeInactive,omitempty"` // Включить отменённые бронирования
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"userId"`
	RoomType        string `json:"roomType"`
	ReservationDate string `json:"reservationDate"` // "2026-09-05"
	StartTime       string `json:"startTime"`       // "20:00"
	EndTime         string `json:"endTime"`         // "22:30"
	PartySize       int    `json:"partySize"`
	Status          string `json:"status"`

	// WaitlistPosition вычисляется по порядку постановки в очередь,
	// заполняется только для статуса waitlisted
	WaitlistPosition *int `json:"waitlistPosition,omitempty"`

	Notes       *string `json:"notes,omitempty"`
	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// ToDomainStatus конвертирует строковый статус в domain
func ToDomainStatus(s string) (domain.ReservationStatus, error) {
	status := domain.ReservationStatus(s)
	switch status {
	case domain.StatusConfirmed, domain.StatusWaitlisted, domain.StatusCancelled:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		RoomType:        string(r.RoomType),
		ReservationDate: r.ReservationDate.Format(domain.DateFormat),
		StartTime:       r.StartTime.String(),
		EndTime:         r.EndTime.String(),
		PartySize:       r.PartySize,
		Status:          string(r.Status),
		Notes:           r.Notes,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}

	if r.CancelledAt != nil {
		cancelledStr := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

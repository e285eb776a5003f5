package create_reservation

import (
	"time"

	"github.com/jadelounge/JL-BookingService/internal/domain"
	"github.com/jadelounge/JL-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64            // ID пользователя
	RoomType  domain.RoomType  // Тип комнаты (bar, mahjong, poker)
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Время начала слота (например, "20:30")
	EndTime   types.TimeString // Время окончания; пусто = начало + 30 минут
	PartySize int              // Размер компании
	Notes     *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64
	UserID    int64
	RoomType  domain.RoomType
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	PartySize int
	Status    string
	Notes     *string

	// Waitlisted true, если слот был занят и запрос встал в очередь
	Waitlisted bool
	// WaitlistPosition позиция в очереди (0 для подтвержденных)
	WaitlistPosition int

	CreatedAt time.Time
	UpdatedAt time.Time
}

func fromDomain(res *domain.Reservation, waitlisted bool, position int) *Response {
	return &Response{
		ID:               res.ID,
		UserID:           res.UserID,
		RoomType:         res.RoomType,
		Date:             res.ReservationDate,
		StartTime:        res.StartTime,
		EndTime:          res.EndTime,
		PartySize:        res.PartySize,
		Status:           string(res.Status),
		Notes:            res.Notes,
		Waitlisted:       waitlisted,
		WaitlistPosition: position,
		CreatedAt:        res.CreatedAt,
		UpdatedAt:        res.UpdatedAt,
	}
}

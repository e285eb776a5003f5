package domain

import (
	"time"

	"github.com/jadelounge/JL-BookingService/pkg/types"
)

// ReservationStatus статус бронирования
type ReservationStatus string

const (
	StatusConfirmed  ReservationStatus = "confirmed"
	StatusWaitlisted ReservationStatus = "waitlisted"
	StatusCancelled  ReservationStatus = "cancelled"
)

// RoomType тип комнаты заведения
// Бар и маджонг делят одно физическое помещение, покер живет отдельно
type RoomType string

const (
	RoomBar     RoomType = "bar"
	RoomMahjong RoomType = "mahjong"
	RoomPoker   RoomType = "poker"
)

// IsValid проверяет, что тип комнаты известен системе
func (r RoomType) IsValid() bool {
	return r == RoomBar || r == RoomMahjong || r == RoomPoker
}

// SharesSpaceWith возвращает второй тип комнаты, делящий то же помещение,
// или пустое значение, если помещение не разделяется
func (r RoomType) SharesSpaceWith() (RoomType, bool) {
	switch r {
	case RoomBar:
		return RoomMahjong, true
	case RoomMahjong:
		return RoomBar, true
	default:
		return "", false
	}
}

// Reservation бронирование слота комнаты на дату
type Reservation struct {
	ID              int64
	UserID          int64
	RoomType        RoomType
	ReservationDate time.Time // дата без времени
	StartTime       types.TimeString
	EndTime         types.TimeString
	PartySize       int
	Status          ReservationStatus
	Notes           *string

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если бронирование занимает слот
// Лист ожидания тоже считается занимающим - это предотвращает
// двойную постановку в очередь на одну и ту же минуту
func (r *Reservation) IsActive() bool {
	return r.Status == StatusConfirmed || r.Status == StatusWaitlisted
}

// IsCancelled возвращает true, если бронирование отменено
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// IsWaitlisted возвращает true, если бронирование стоит в листе ожидания
func (r *Reservation) IsWaitlisted() bool {
	return r.Status == StatusWaitlisted
}

// CanBeCancelled возвращает true, если бронирование можно отменить
// Перехода из cancelled обратно нет
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusConfirmed || r.Status == StatusWaitlisted
}

// SlotKey ключ конкуренции (дата, время начала, тип комнаты)
// Единица сериализации для создания и продвижения из листа ожидания
type SlotKey struct {
	Date     time.Time
	Time     types.TimeString
	RoomType RoomType
}

// Key возвращает ключ слота данного бронирования
func (r *Reservation) Key() SlotKey {
	return SlotKey{
		Date:     r.ReservationDate,
		Time:     r.StartTime,
		RoomType: r.RoomType,
	}
}

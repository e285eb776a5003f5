package create_reservation

import (
	"errors"
	"fmt"
	"time"

	"github.com/jadelounge/JL-BookingService/internal/domain"
	"github.com/jadelounge/JL-BookingService/internal/schedule"
	"github.com/jadelounge/JL-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if !req.RoomType.IsValid() {
		return fmt.Errorf("%w: unknown room type %q", ErrInvalidInput, req.RoomType)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if !req.EndTime.IsZero() {
		if err := req.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
		}
	}

	if req.PartySize < domain.MinPartySize || req.PartySize > domain.MaxPartySize {
		return fmt.Errorf("%w: partySize must be between %d and %d",
			ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateBookingWindow проверяет, что дата в окне бронирования:
// текущий операционный день <= дата <= операционный день + BookingWindowDays.
// До 02:00 ночи "сегодня" - это еще вчерашняя дата, чтобы не отрезать
// оставшиеся слоты идущей сессии
func validateBookingWindow(date time.Time, now time.Time) error {
	today := schedule.OperatingDate(now)
	dateOnly := schedule.DateOnly(date)
	maxDate := today.AddDate(0, 0, domain.BookingWindowDays)

	if dateOnly.Before(today) || dateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book from today up to %d days ahead",
			ErrOutsideBookingWindow, domain.BookingWindowDays)
	}

	return nil
}

// validateNotInPast проверяет, что момент начала слота еще не прошел
func validateNotInPast(date time.Time, startTime types.TimeString, now time.Time) error {
	moment, err := schedule.SlotMoment(date, startTime, now.Location())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBookingTime, err)
	}

	if moment.Before(now) {
		return ErrInPast
	}

	return nil
}

// resolveEndTime возвращает время окончания: явно заданное или начало + 30 минут
// Конец должен быть достижим из начала целыми 30-минутными шагами
// и не выходить за границу закрытия 02:00
func resolveEndTime(req *Request) (types.TimeString, error) {
	startMinute, err := schedule.TimeToMinutes(req.StartTime, req.Date)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBookingTime, err)
	}

	if req.EndTime.IsZero() {
		if startMinute+domain.SlotDurationMinutes > schedule.ClosingMinute {
			return "", fmt.Errorf("%w: slot would end past closing time", ErrInvalidBookingTime)
		}
		return schedule.MinutesToTime(startMinute + domain.SlotDurationMinutes), nil
	}

	endMinute, err := schedule.TimeToMinutes(req.EndTime, req.Date)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBookingTime, err)
	}

	switch {
	case endMinute <= startMinute:
		return "", fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	case (endMinute-startMinute)%domain.SlotDurationMinutes != 0:
		return "", fmt.Errorf("%w: duration must be a multiple of %d minutes",
			ErrInvalidInput, domain.SlotDurationMinutes)
	case endMinute > schedule.ClosingMinute:
		return "", fmt.Errorf("%w: endTime is past the 02:00 closing boundary", ErrInvalidBookingTime)
	}

	return req.EndTime, nil
}

// validatePartySizeCap применяет ограничение маленьких компаний в баре:
// меньше трех человек - не дольше двух часов
func validatePartySizeCap(req *Request, endTime types.TimeString) error {
	if req.RoomType != domain.RoomBar || req.PartySize >= domain.SmallPartyThreshold {
		return nil
	}

	startMinute, err := schedule.TimeToMinutes(req.StartTime, req.Date)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBookingTime, err)
	}
	endMinute, err := schedule.TimeToMinutes(endTime, req.Date)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBookingTime, err)
	}

	if float64(endMinute-startMinute)/60 > domain.SmallPartyMaxHours {
		return fmt.Errorf("%w: parties under %d may book at most %.0f hours at the bar",
			ErrPartySizeLimit, domain.SmallPartyThreshold, domain.SmallPartyMaxHours)
	}

	return nil
}

// wrapScheduleErr конвертирует ошибку пакета schedule в ошибку usecase
func wrapScheduleErr(err error) error {
	if errors.Is(err, schedule.ErrInvalidBookingTime) {
		return fmt.Errorf("%w: %v", ErrInvalidBookingTime, err)
	}
	return fmt.Errorf("%w: %v", ErrInternal, err)
}

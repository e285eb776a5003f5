package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/jadelounge/JL-BookingService/internal/domain"
	"github.com/jadelounge/JL-BookingService/pkg/types"
)

// Пакет schedule дает всем остальным компонентам единый способ
// сравнивать времена, пересекающие полночь. Рабочая сессия длится
// с часа открытия до 02:00 следующего календарного дня и считается
// одним "операционным днем".

var (
	// ErrInvalidBookingTime возвращается, когда время вне рабочей сессии даты
	// Вызывающие не должны подставлять время по умолчанию
	ErrInvalidBookingTime = errors.New("schedule: time outside operating hours")
)

const (
	// CloseHour час закрытия следующего календарного дня
	CloseHour = 2

	// ClosingMinute граница закрытия 02:00 в минутах операционного дня (26*60)
	// Любое вычисленное время окончания за этой границей недопустимо
	ClosingMinute = (CloseHour + 24) * 60

	weekdayOpenHour = 18
	weekendOpenHour = 12
)

// OperatingHours рабочие часы операционного дня
type OperatingHours struct {
	StartHour int
	EndHour   int
}

// HoursForDate возвращает рабочие часы для даты:
// суббота и воскресенье открываются в 12:00, будни в 18:00,
// закрытие всегда в 02:00 следующего календарного дня
func HoursForDate(date time.Time) OperatingHours {
	wd := date.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return OperatingHours{StartHour: weekendOpenHour, EndHour: CloseHour}
	}
	return OperatingHours{StartHour: weekdayOpenHour, EndHour: CloseHour}
}

// TimeToMinutes конвертирует "HH:MM" в минуты от полуночи операционного дня
// Часы в диапазоне [0, CloseHour] относятся к следующему календарному дню
// и получают смещение +24 часа; часы между закрытием и открытием - ошибка
func TimeToMinutes(t types.TimeString, date time.Time) (int, error) {
	if err := t.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidBookingTime, err)
	}

	hours := HoursForDate(date)
	h, m := t.Hour(), t.Minute()

	switch {
	case h >= hours.StartHour:
		return h*60 + m, nil
	case h >= 0 && h <= CloseHour:
		// Переход через полночь: время принадлежит той же сессии
		return (h+24)*60 + m, nil
	default:
		return 0, fmt.Errorf("%w: %q is outside the %02d:00-%02d:00 session on %s",
			ErrInvalidBookingTime, t.String(), hours.StartHour, hours.EndHour,
			date.Format(domain.DateFormat))
	}
}

// MinutesToTime обратное преобразование: минуты операционного дня в "HH:MM"
// Значения от 1440 отображаются обратно в часы следующего дня
func MinutesToTime(minutes int) types.TimeString {
	h := minutes / 60
	m := minutes % 60
	if h >= 24 {
		h -= 24
	}
	return types.TimeString(fmt.Sprintf("%02d:%02d", h, m))
}

// SlotEndTime возвращает время окончания 30-минутного слота
func SlotEndTime(start types.TimeString, date time.Time) (types.TimeString, error) {
	minutes, err := TimeToMinutes(start, date)
	if err != nil {
		return "", err
	}
	return MinutesToTime(minutes + domain.SlotDurationMinutes), nil
}

// SessionSlots возвращает все возможные времена начала слотов на дату:
// от часа открытия до последнего слота, заканчивающегося ровно в 02:00
func SessionSlots(date time.Time) []types.TimeString {
	hours := HoursForDate(date)
	slots := make([]types.TimeString, 0, (ClosingMinute-hours.StartHour*60)/domain.SlotDurationMinutes)
	for minute := hours.StartHour * 60; minute+domain.SlotDurationMinutes <= ClosingMinute; minute += domain.SlotDurationMinutes {
		slots = append(slots, MinutesToTime(minute))
	}
	return slots
}

// DateOnly обнуляет компонент времени, оставляя календарную дату
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// OperatingDate возвращает дату текущего операционного дня:
// до 02:00 ночи сессия все еще принадлежит предыдущему календарному дню
func OperatingDate(now time.Time) time.Time {
	if now.Hour() < CloseHour {
		return DateOnly(now.AddDate(0, 0, -1))
	}
	return DateOnly(now)
}

// IsSameDay проверяет, что две даты относятся к одному календарному дню
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// SlotMoment возвращает абсолютный момент начала слота:
// полночь даты бронирования плюс минуты операционного дня
// (слоты после полуночи корректно попадают в следующий календарный день)
func SlotMoment(date time.Time, t types.TimeString, loc *time.Location) (time.Time, error) {
	minutes, err := TimeToMinutes(t, date)
	if err != nil {
		return time.Time{}, err
	}
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	return midnight.Add(time.Duration(minutes) * time.Minute), nil
}

package availability

import (
	"time"

	"github.com/jadelounge/JL-BookingService/internal/domain"
	"github.com/jadelounge/JL-BookingService/internal/schedule"
	"github.com/jadelounge/JL-BookingService/pkg/types"
)

// DurationLimit результат расчета максимальной длительности
// Причины ограничения различимы по отдельности, чтобы API слой
// мог объяснить пользователю, почему нельзя сидеть дольше
type DurationLimit struct {
	// Hours максимальная длительность в часах (кратна 0.5)
	Hours float64

	// LimitedByClosingTime проход уперся в границу закрытия 02:00
	LimitedByClosingTime bool

	// LimitedByBookings проход уперся в занятый/заблокированный слот
	LimitedByBookings bool

	// LimitedByPartySize сработало ограничение для маленьких компаний в баре
	LimitedByPartySize bool
}

// MaxDuration вычисляет максимальную непрерывную длительность бронирования
// от startTime по сетке статусов дня
//
// Идем вперед 30-минутными шагами и останавливаемся на первом слоте,
// отсутствующем в сетке или не имеющем статус available, либо на границе
// закрытия. Для бара с компанией меньше трех человек результат ограничен
// двумя часами независимо от свободных слотов
func MaxDuration(
	startTime types.TimeString,
	statuses map[types.TimeString]domain.SlotStatus,
	partySize int,
	roomType domain.RoomType,
	date time.Time,
) (DurationLimit, error) {
	startMinute, err := schedule.TimeToMinutes(startTime, date)
	if err != nil {
		return DurationLimit{}, err
	}

	var limit DurationLimit
	count := 0

	for minute := startMinute; ; minute += domain.SlotDurationMinutes {
		if minute+domain.SlotDurationMinutes > schedule.ClosingMinute {
			limit.LimitedByClosingTime = true
			break
		}

		status, ok := statuses[schedule.MinutesToTime(minute)]
		if !ok || !status.IsBookable() {
			limit.LimitedByBookings = true
			break
		}

		count++
	}

	limit.Hours = float64(count) / 2

	// Слот, признанный доступным проверкой доступности, всегда дает
	// хотя бы одну бронируемую единицу
	if limit.Hours == 0 {
		if status, ok := statuses[startTime]; ok && status.IsBookable() {
			limit.Hours = 0.5
		}
	}

	// Ограничение маленьких компаний действует только для бара
	if roomType == domain.RoomBar && partySize < domain.SmallPartyThreshold && limit.Hours > domain.SmallPartyMaxHours {
		limit.Hours = domain.SmallPartyMaxHours
		limit.LimitedByClosingTime = false
		limit.LimitedByBookings = false
		limit.LimitedByPartySize = true
	}

	return limit, nil
}

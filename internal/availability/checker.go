package availability

import (
	"time"

	"github.com/jadelounge/JL-BookingService/internal/domain"
	"github.com/jadelounge/JL-BookingService/internal/schedule"
	"github.com/jadelounge/JL-BookingService/pkg/types"
)

// Пакет availability отвечает на вопрос "можно ли начать бронирование
// в (дата, время, комната)?" по снимку данных дня, выбранному из хранилища.
// Все функции чистые: текущее время передается явно.

// DaySnapshot снимок данных одного операционного дня для одной комнаты
type DaySnapshot struct {
	Date time.Time

	// Blocks административные блокировки для этой комнаты на дату
	Blocks []*domain.BlockedSlot

	// RoomReservations активные (confirmed и waitlisted) бронирования комнаты
	// Лист ожидания занимает слот намеренно: это предотвращает двойную
	// постановку в очередь на одну и ту же минуту, даже если слот с только
	// waitlisted-спросом выглядит "занятым" для третьей стороны
	RoomReservations []*domain.Reservation

	// SharedRoomReservations активные бронирования комнаты, делящей то же
	// помещение (пустой для покера)
	SharedRoomReservations []*domain.Reservation
}

// Окно приоритета бара: пятница/суббота/воскресенье, 20:00-23:00
const (
	barPriorityStartMinute = 20 * 60
	barPriorityEndMinute   = 23 * 60
)

// IsBarPriorityActive проверяет, действует ли приоритет бара для слота
// Приоритет действует только в пятницу/субботу/воскресенье, только в окне
// 20:00-23:00 и только для дат строго в будущем относительно текущего
// операционного дня: сегодня маджонг всегда можно бронировать
func IsBarPriorityActive(t types.TimeString, date time.Time, now time.Time) bool {
	wd := date.Weekday()
	if wd != time.Friday && wd != time.Saturday && wd != time.Sunday {
		return false
	}

	wallMinute := t.Hour()*60 + t.Minute()
	if wallMinute < barPriorityStartMinute || wallMinute >= barPriorityEndMinute {
		return false
	}

	return schedule.DateOnly(date).After(schedule.OperatingDate(now))
}

// SlotStatus вычисляет статус одного слота
// Порядок проверок: прошедшее время, административные блокировки,
// прямые конфликты своей комнаты, правило разделяемого помещения
func SlotStatus(roomType domain.RoomType, t types.TimeString, snap *DaySnapshot, now time.Time) (domain.SlotStatus, error) {
	minute, err := schedule.TimeToMinutes(t, snap.Date)
	if err != nil {
		return "", err
	}

	past, err := isSlotInPast(t, snap.Date, now)
	if err != nil {
		return "", err
	}
	if past {
		return domain.SlotPast, nil
	}

	for _, block := range snap.Blocks {
		within, err := minuteWithinRange(minute, block.StartTime, block.EndTime, snap.Date)
		if err != nil {
			return "", err
		}
		if within {
			return domain.SlotBlocked, nil
		}
	}

	conflict, err := hasConflict(minute, snap.Date, snap.RoomReservations)
	if err != nil {
		return "", err
	}
	if conflict {
		return domain.SlotBooked, nil
	}

	// Разделяемое помещение касается только бара и маджонга
	if _, shared := roomType.SharesSpaceWith(); shared {
		priority := IsBarPriorityActive(t, snap.Date, now)

		// Маджонг в спорные часы недоступен независимо от брони бара:
		// бар получает первое право на эти слоты
		if roomType == domain.RoomMahjong && priority {
			return domain.SlotRestricted, nil
		}

		otherConflict, err := hasConflict(minute, snap.Date, snap.SharedRoomReservations)
		if err != nil {
			return "", err
		}
		if otherConflict {
			// Бар в своем окне приоритета вытесняет маджонг
			if roomType == domain.RoomBar && priority {
				return domain.SlotAvailable, nil
			}
			// Вне окна приоритета помещение взаимоисключающее
			return domain.SlotBooked, nil
		}
	}

	return domain.SlotAvailable, nil
}

// IsSlotAvailable булево решение: можно ли начать бронирование в слоте
func IsSlotAvailable(roomType domain.RoomType, t types.TimeString, snap *DaySnapshot, now time.Time) (bool, error) {
	status, err := SlotStatus(roomType, t, snap, now)
	if err != nil {
		return false, err
	}
	return status.IsBookable(), nil
}

// SlotStatuses строит сетку статусов всех слотов рабочей сессии даты
func SlotStatuses(roomType domain.RoomType, snap *DaySnapshot, now time.Time) (map[types.TimeString]domain.SlotStatus, error) {
	slots := schedule.SessionSlots(snap.Date)
	statuses := make(map[types.TimeString]domain.SlotStatus, len(slots))

	for _, slot := range slots {
		status, err := SlotStatus(roomType, slot, snap, now)
		if err != nil {
			return nil, err
		}
		statuses[slot] = status
	}

	return statuses, nil
}

// AvailableSlots возвращает упорядоченный список свободных времен начала
// для всех слотов рабочей сессии даты
func AvailableSlots(roomType domain.RoomType, snap *DaySnapshot, now time.Time) ([]types.TimeString, error) {
	statuses, err := SlotStatuses(roomType, snap, now)
	if err != nil {
		return nil, err
	}

	available := make([]types.TimeString, 0, len(statuses))
	for _, slot := range schedule.SessionSlots(snap.Date) {
		if statuses[slot].IsBookable() {
			available = append(available, slot)
		}
	}

	return available, nil
}

// ConsecutiveAvailableSlots возвращает все группы из durationHours*2 подряд
// идущих свободных слотов - все допустимые варианты начала для запрошенной
// длительности, без пересчета через калькулятор длительности
func ConsecutiveAvailableSlots(roomType domain.RoomType, snap *DaySnapshot, durationHours float64, now time.Time) ([][]types.TimeString, error) {
	needed := int(durationHours * 2)
	if needed < 1 {
		needed = 1
	}

	statuses, err := SlotStatuses(roomType, snap, now)
	if err != nil {
		return nil, err
	}

	slots := schedule.SessionSlots(snap.Date)
	groups := make([][]types.TimeString, 0)

	for i := 0; i+needed <= len(slots); i++ {
		group := slots[i : i+needed]
		allFree := true
		for _, slot := range group {
			if !statuses[slot].IsBookable() {
				allFree = false
				break
			}
		}
		if allFree {
			groups = append(groups, append([]types.TimeString(nil), group...))
		}
	}

	return groups, nil
}

// hasConflict проверяет, попадает ли минута слота в интервал [start, end)
// какого-либо активного бронирования
func hasConflict(minute int, date time.Time, reservations []*domain.Reservation) (bool, error) {
	for _, res := range reservations {
		if !res.IsActive() {
			continue
		}
		within, err := minuteWithinRange(minute, res.StartTime, res.EndTime, date)
		if err != nil {
			// Некорректно сохраненное время не должно ронять проверку
			continue
		}
		if within {
			return true, nil
		}
	}
	return false, nil
}

// minuteWithinRange проверяет minute ∈ [start, end) в минутах операционного дня
func minuteWithinRange(minute int, start, end types.TimeString, date time.Time) (bool, error) {
	startMin, err := schedule.TimeToMinutes(start, date)
	if err != nil {
		return false, err
	}
	endMin, err := schedule.TimeToMinutes(end, date)
	if err != nil {
		return false, err
	}
	return minute >= startMin && minute < endMin, nil
}

// isSlotInPast проверяет, что момент начала слота уже прошел
func isSlotInPast(t types.TimeString, date time.Time, now time.Time) (bool, error) {
	moment, err := schedule.SlotMoment(date, t, now.Location())
	if err != nil {
		return false, err
	}
	return moment.Before(now), nil
}

package get_available_slots

import "github.com/jadelounge/JL-BookingService/internal/domain"

// Request запрос слотов зала на дату
type Request struct {
	RoomType domain.RoomType
	Date     string
	// DurationHours - если > 0, в ответ добавляются цепочки подряд идущих
	// свободных слотов указанной длительности
	DurationHours float64
}

// SlotInfo статус одного получасового слота
type SlotInfo struct {
	StartTime string
	EndTime   string
	Status    string
}

// Response сетка слотов операционного дня
type Response struct {
	RoomType       string
	Date           string
	Slots          []SlotInfo
	AvailableSlots []string
	// ConsecutiveRanges - последовательности свободных слотов длиной
	// DurationHours (заполняется только при заданной длительности)
	ConsecutiveRanges [][]string
}

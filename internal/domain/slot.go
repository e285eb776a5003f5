package domain

// SlotStatus статус отдельного 30-минутного слота в сетке дня
// Закрытое перечисление вместо свободных строк, чтобы
// необработанный статус ловился на этапе компиляции
type SlotStatus string

const (
	SlotAvailable  SlotStatus = "available"
	SlotBooked     SlotStatus = "booked"
	SlotBlocked    SlotStatus = "blocked"
	SlotRestricted SlotStatus = "restricted" // занято приоритетом бара в спорные часы
	SlotPast       SlotStatus = "past"
)

// IsBookable возвращает true, если слот можно занять новым бронированием
func (s SlotStatus) IsBookable() bool {
	return s == SlotAvailable
}

package domain

// Параметры сетки слотов и окна бронирования
const (
	SlotDurationMinutes = 30

	// BookingWindowDays максимальная глубина бронирования: сегодня + 14 дней
	BookingWindowDays = 14

	// SmallPartyMaxHours ограничение длительности для маленьких компаний в баре
	SmallPartyMaxHours = 2.0

	// SmallPartyThreshold компании меньше этого размера попадают под ограничение
	SmallPartyThreshold = 3

	MinPartySize = 1
	MaxPartySize = 30

	MaxNotesLength = 500
)

// Форматы дат и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, при которых бронирование занимает слот
// Лист ожидания включен намеренно: это предотвращает двойную
// постановку в очередь на одну и ту же минуту
var ActiveStatuses = []ReservationStatus{
	StatusConfirmed,
	StatusWaitlisted,
}

// AllRoomTypes все типы комнат заведения
var AllRoomTypes = []RoomType{
	RoomBar,
	RoomMahjong,
	RoomPoker,
}

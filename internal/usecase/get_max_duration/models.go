package get_max_duration

import "github.com/jadelounge/JL-BookingService/internal/domain"

// Request запрос максимальной длительности от заданного слота
type Request struct {
	RoomType  domain.RoomType
	Date      string
	StartTime string
	PartySize int
}

// Response максимально доступная длительность и ограничившие её факторы
type Response struct {
	RoomType             string
	Date                 string
	StartTime            string
	EndTime              string
	MaxDurationHours     float64
	LimitedByClosingTime bool
	LimitedByBookings    bool
	LimitedByPartySize   bool
}

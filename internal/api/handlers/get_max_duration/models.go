package get_max_duration

import (
	getMaxDuration "github.com/jadelounge/JL-BookingService/internal/usecase/get_max_duration"
)

// MaxDurationResponse HTTP response model
type MaxDurationResponse struct {
	RoomType             string  `json:"roomType"`
	Date                 string  `json:"date"`
	StartTime            string  `json:"startTime"`
	EndTime              string  `json:"endTime,omitempty"`
	MaxDurationHours     float64 `json:"maxDurationHours"`
	LimitedByClosingTime bool    `json:"limitedByClosingTime"`
	LimitedByBookings    bool    `json:"limitedByBookings"`
	LimitedByPartySize   bool    `json:"limitedByPartySize"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getMaxDuration.Response) *MaxDurationResponse {
	return &MaxDurationResponse{
		RoomType:             resp.RoomType,
		Date:                 resp.Date,
		StartTime:            resp.StartTime,
		EndTime:              resp.EndTime,
		MaxDurationHours:     resp.MaxDurationHours,
		LimitedByClosingTime: resp.LimitedByClosingTime,
		LimitedByBookings:    resp.LimitedByBookings,
		LimitedByPartySize:   resp.LimitedByPartySize,
	}
}

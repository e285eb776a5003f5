package get_available_slots

import (
	getAvailableSlots "github.com/jadelounge/JL-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	RoomType          string     `json:"roomType"`
	Date              string     `json:"date"`
	Slots             []SlotInfo `json:"slots"`
	AvailableSlots    []string   `json:"availableSlots"`
	ConsecutiveRanges [][]string `json:"consecutiveRanges,omitempty"`
}

// SlotInfo модель получасового слота
type SlotInfo struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotInfo, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotInfo{
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Status:    slot.Status,
		}
	}

	return &AvailableSlotsResponse{
		RoomType:          resp.RoomType,
		Date:              resp.Date,
		Slots:             slots,
		AvailableSlots:    resp.AvailableSlots,
		ConsecutiveRanges: resp.ConsecutiveRanges,
	}
}

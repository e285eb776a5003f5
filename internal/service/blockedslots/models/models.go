package models

import (
	"time"

	"github.com/jadelounge/JL-BookingService/internal/domain"
)

// Request модели

// CreateBlockedSlotRequest запрос на блокировку диапазона слотов
type CreateBlockedSlotRequest struct {
	RoomType  string  `json:"roomType"`
	BlockDate string  `json:"blockDate"` // "2026-09-05"
	StartTime string  `json:"startTime"` // "20:00"
	EndTime   string  `json:"endTime"`   // "23:00"
	Reason    *string `json:"reason,omitempty"`
}

// GetBlockedSlotsRequest запрос на получение блокировок зала на дату
type GetBlockedSlotsRequest struct {
	RoomType string `json:"roomType"`
	Date     string `json:"date"`
}

// Response модели

// BlockedSlotResponse ответ с данными блокировки
type BlockedSlotResponse struct {
	ID        int64     `json:"id"`
	RoomType  string    `json:"roomType"`
	BlockDate string    `json:"blockDate"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlockedSlotListResponse ответ со списком блокировок
type BlockedSlotListResponse struct {
	BlockedSlots []BlockedSlotResponse `json:"blockedSlots"`
}

// FromDomainBlockedSlot конвертирует domain модель в DTO
func FromDomainBlockedSlot(b *domain.BlockedSlot) *BlockedSlotResponse {
	if b == nil {
		return nil
	}

	return &BlockedSlotResponse{
		ID:        b.ID,
		RoomType:  string(b.RoomType),
		BlockDate: b.BlockDate.Format(domain.DateFormat),
		StartTime: b.StartTime.String(),
		EndTime:   b.EndTime.String(),
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}
}

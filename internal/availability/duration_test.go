package availability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadelounge/JL-BookingService/internal/availability"
	"github.com/jadelounge/JL-BookingService/internal/domain"
	"github.com/jadelounge/JL-BookingService/internal/schedule"
	"github.com/jadelounge/JL-BookingService/pkg/types"
)

// statusGrid строит сетку, где все слоты сессии свободны, кроме перечисленных
func statusGrid(t *testing.T, busy ...types.TimeString) map[types.TimeString]domain.SlotStatus {
	t.Helper()

	grid := make(map[types.TimeString]domain.SlotStatus)
	for _, slot := range schedule.SessionSlots(tuesday) {
		grid[slot] = domain.SlotAvailable
	}
	for _, slot := range busy {
		require.Contains(t, grid, slot)
		grid[slot] = domain.SlotBooked
	}
	return grid
}

func TestMaxDuration(t *testing.T) {
	tests := []struct {
		name      string
		start     types.TimeString
		busy      []types.TimeString
		partySize int
		room      domain.RoomType
		wantHours float64
		wantFlags availability.DurationLimit
	}{
		{
			name:      "open evening runs to closing",
			start:     "18:00",
			partySize: 4,
			room:      domain.RoomPoker,
			wantHours: 8.0,
			wantFlags: availability.DurationLimit{LimitedByClosingTime: true},
		},
		{
			name:      "stopped by booked slot",
			start:     "18:00",
			busy:      []types.TimeString{"20:30"},
			partySize: 4,
			room:      domain.RoomPoker,
			wantHours: 2.5,
			wantFlags: availability.DurationLimit{LimitedByBookings: true},
		},
		{
			name:      "late start limited by closing",
			start:     "01:00",
			partySize: 4,
			room:      domain.RoomPoker,
			wantHours: 1.0,
			wantFlags: availability.DurationLimit{LimitedByClosingTime: true},
		},
		{
			name:      "small bar party capped at two hours",
			start:     "18:00",
			partySize: 2,
			room:      domain.RoomBar,
			wantHours: 2.0,
			wantFlags: availability.DurationLimit{LimitedByPartySize: true},
		},
		{
			name:      "small bar party under the cap keeps real limit",
			start:     "00:30",
			partySize: 2,
			room:      domain.RoomBar,
			wantHours: 1.5,
			wantFlags: availability.DurationLimit{LimitedByClosingTime: true},
		},
		{
			name:      "three people at the bar are not capped",
			start:     "18:00",
			partySize: 3,
			room:      domain.RoomBar,
			wantHours: 8.0,
			wantFlags: availability.DurationLimit{LimitedByClosingTime: true},
		},
		{
			name:      "mahjong party of two is not capped",
			start:     "18:00",
			partySize: 2,
			room:      domain.RoomMahjong,
			wantHours: 8.0,
			wantFlags: availability.DurationLimit{LimitedByClosingTime: true},
		},
		{
			name:      "start slot booked gives zero",
			start:     "20:00",
			busy:      []types.TimeString{"20:00"},
			partySize: 4,
			room:      domain.RoomPoker,
			wantHours: 0,
			wantFlags: availability.DurationLimit{LimitedByBookings: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := statusGrid(t, tt.busy...)

			limit, err := availability.MaxDuration(tt.start, grid, tt.partySize, tt.room, tuesday)
			require.NoError(t, err)

			assert.Equal(t, tt.wantHours, limit.Hours)
			assert.Equal(t, tt.wantFlags.LimitedByClosingTime, limit.LimitedByClosingTime, "LimitedByClosingTime")
			assert.Equal(t, tt.wantFlags.LimitedByBookings, limit.LimitedByBookings, "LimitedByBookings")
			assert.Equal(t, tt.wantFlags.LimitedByPartySize, limit.LimitedByPartySize, "LimitedByPartySize")
		})
	}
}

func TestMaxDuration_InvalidStart(t *testing.T) {
	grid := statusGrid(t)

	_, err := availability.MaxDuration("09:00", grid, 4, domain.RoomPoker, tuesday)
	assert.ErrorIs(t, err, schedule.ErrInvalidBookingTime)
}

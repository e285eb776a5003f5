package availability_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadelounge/JL-BookingService/internal/availability"
	"github.com/jadelounge/JL-BookingService/internal/domain"
	"github.com/jadelounge/JL-BookingService/pkg/types"
)

var (
	// 2026-09-01 - вторник, 2026-09-02 - среда, 2026-09-04 - пятница
	tuesday = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	friday  = time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)

	// Текущий момент: вечер вторника
	tuesdayEvening = time.Date(2026, 9, 1, 19, 0, 0, 0, time.UTC)
)

func makeReservation(room domain.RoomType, start, end types.TimeString, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:        1,
		UserID:    100,
		RoomType:  room,
		StartTime: start,
		EndTime:   end,
		PartySize: 4,
		Status:    status,
	}
}

func TestIsBarPriorityActive(t *testing.T) {
	tests := []struct {
		name string
		time types.TimeString
		date time.Time
		now  time.Time
		want bool
	}{
		{name: "friday future in window", time: "20:30", date: friday, now: tuesdayEvening, want: true},
		{name: "window start inclusive", time: "20:00", date: friday, now: tuesdayEvening, want: true},
		{name: "just before window", time: "19:59", date: friday, now: tuesdayEvening, want: false},
		{name: "window end exclusive", time: "23:00", date: friday, now: tuesdayEvening, want: false},
		{name: "wednesday never", time: "20:30", date: tuesday.AddDate(0, 0, 1), now: tuesdayEvening, want: false},
		{name: "saturday in window", time: "22:30", date: friday.AddDate(0, 0, 1), now: tuesdayEvening, want: true},
		{name: "sunday in window", time: "20:30", date: friday.AddDate(0, 0, 2), now: tuesdayEvening, want: true},
		{
			name: "same operating day is exempt",
			time: "20:30",
			date: friday,
			now:  time.Date(2026, 9, 4, 19, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "late night still belongs to friday session",
			time: "20:30",
			date: friday,
			now:  time.Date(2026, 9, 5, 1, 0, 0, 0, time.UTC),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, availability.IsBarPriorityActive(tt.time, tt.date, tt.now))
		})
	}
}

func TestSlotStatus(t *testing.T) {
	tests := []struct {
		name string
		room domain.RoomType
		time types.TimeString
		snap *availability.DaySnapshot
		now  time.Time
		want domain.SlotStatus
	}{
		{
			name: "free slot is available",
			room: domain.RoomPoker,
			time: "20:00",
			snap: &availability.DaySnapshot{Date: friday},
			now:  tuesdayEvening,
			want: domain.SlotAvailable,
		},
		{
			name: "slot before now is past",
			room: domain.RoomBar,
			time: "18:00",
			snap: &availability.DaySnapshot{Date: tuesday},
			now:  tuesdayEvening,
			want: domain.SlotPast,
		},
		{
			name: "admin block wins over everything else",
			room: domain.RoomBar,
			time: "20:30",
			snap: &availability.DaySnapshot{
				Date: friday,
				Blocks: []*domain.BlockedSlot{
					{RoomType: domain.RoomBar, StartTime: "20:00", EndTime: "21:00"},
				},
			},
			now:  tuesdayEvening,
			want: domain.SlotBlocked,
		},
		{
			name: "own room confirmed reservation books the slot",
			room: domain.RoomPoker,
			time: "20:00",
			snap: &availability.DaySnapshot{
				Date: friday,
				RoomReservations: []*domain.Reservation{
					makeReservation(domain.RoomPoker, "19:00", "21:00", domain.StatusConfirmed),
				},
			},
			now:  tuesdayEvening,
			want: domain.SlotBooked,
		},
		{
			name: "waitlisted reservation occupies the slot too",
			room: domain.RoomPoker,
			time: "20:00",
			snap: &availability.DaySnapshot{
				Date: friday,
				RoomReservations: []*domain.Reservation{
					makeReservation(domain.RoomPoker, "20:00", "20:30", domain.StatusWaitlisted),
				},
			},
			now:  tuesdayEvening,
			want: domain.SlotBooked,
		},
		{
			name: "cancelled reservation frees the slot",
			room: domain.RoomPoker,
			time: "20:00",
			snap: &availability.DaySnapshot{
				Date: friday,
				RoomReservations: []*domain.Reservation{
					makeReservation(domain.RoomPoker, "20:00", "20:30", domain.StatusCancelled),
				},
			},
			now:  tuesdayEvening,
			want: domain.SlotAvailable,
		},
		{
			name: "mahjong is restricted during bar priority window",
			room: domain.RoomMahjong,
			time: "20:30",
			snap: &availability.DaySnapshot{Date: friday},
			now:  tuesdayEvening,
			want: domain.SlotRestricted,
		},
		{
			name: "mahjong outside priority window follows shared space rule",
			room: domain.RoomMahjong,
			time: "19:00",
			snap: &availability.DaySnapshot{
				Date: friday,
				SharedRoomReservations: []*domain.Reservation{
					makeReservation(domain.RoomBar, "19:00", "20:00", domain.StatusConfirmed),
				},
			},
			now:  tuesdayEvening,
			want: domain.SlotBooked,
		},
		{
			name: "bar pre-empts mahjong reservation inside priority window",
			room: domain.RoomBar,
			time: "20:30",
			snap: &availability.DaySnapshot{
				Date: friday,
				SharedRoomReservations: []*domain.Reservation{
					makeReservation(domain.RoomMahjong, "20:00", "21:00", domain.StatusConfirmed),
				},
			},
			now:  tuesdayEvening,
			want: domain.SlotAvailable,
		},
		{
			name: "bar outside priority window yields to mahjong reservation",
			room: domain.RoomBar,
			time: "19:00",
			snap: &availability.DaySnapshot{
				Date: friday,
				SharedRoomReservations: []*domain.Reservation{
					makeReservation(domain.RoomMahjong, "19:00", "20:00", domain.StatusConfirmed),
				},
			},
			now:  tuesdayEvening,
			want: domain.SlotBooked,
		},
		{
			name: "mahjong bookable during evening window on weekdays",
			room: domain.RoomMahjong,
			time: "20:30",
			snap: &availability.DaySnapshot{Date: tuesday.AddDate(0, 0, 1)},
			now:  tuesdayEvening,
			want: domain.SlotAvailable,
		},
		{
			name: "poker never shares space",
			room: domain.RoomPoker,
			time: "20:30",
			snap: &availability.DaySnapshot{Date: friday},
			now:  tuesdayEvening,
			want: domain.SlotAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := availability.SlotStatus(tt.room, tt.time, tt.snap, tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAvailableSlots(t *testing.T) {
	snap := &availability.DaySnapshot{
		Date: tuesday.AddDate(0, 0, 1), // среда, открытие в 18:00
		RoomReservations: []*domain.Reservation{
			makeReservation(domain.RoomPoker, "19:00", "20:00", domain.StatusConfirmed),
		},
	}

	slots, err := availability.AvailableSlots(domain.RoomPoker, snap, tuesdayEvening)
	require.NoError(t, err)

	// 16 слотов сессии минус два занятых
	require.Len(t, slots, 14)
	assert.Equal(t, types.TimeString("18:00"), slots[0])
	assert.NotContains(t, slots, types.TimeString("19:00"))
	assert.NotContains(t, slots, types.TimeString("19:30"))
	assert.Contains(t, slots, types.TimeString("20:00"))
}

func TestConsecutiveAvailableSlots(t *testing.T) {
	// Занят один слот в середине вечера
	snap := &availability.DaySnapshot{
		Date: tuesday.AddDate(0, 0, 1),
		RoomReservations: []*domain.Reservation{
			makeReservation(domain.RoomPoker, "19:00", "19:30", domain.StatusConfirmed),
		},
	}

	groups, err := availability.ConsecutiveAvailableSlots(domain.RoomPoker, snap, 1.0, tuesdayEvening)
	require.NoError(t, err)
	require.NotEmpty(t, groups)

	for _, group := range groups {
		require.Len(t, group, 2)
		assert.NotContains(t, group, types.TimeString("19:00"))
	}

	// Первая цепочка начинается с открытия: 18:00-19:00 свободен целиком
	assert.Equal(t, []types.TimeString{"18:00", "18:30"}, groups[0])
	// Следом идет цепочка после занятого слота
	assert.Equal(t, []types.TimeString{"19:30", "20:00"}, groups[1])
}

package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadelounge/JL-BookingService/internal/schedule"
	"github.com/jadelounge/JL-BookingService/pkg/types"
)

var (
	// 2026-09-02 - среда, 2026-09-05 - суббота
	weekday = time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	weekend = time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
)

func TestHoursForDate(t *testing.T) {
	assert.Equal(t, schedule.OperatingHours{StartHour: 18, EndHour: 2}, schedule.HoursForDate(weekday))
	assert.Equal(t, schedule.OperatingHours{StartHour: 12, EndHour: 2}, schedule.HoursForDate(weekend))

	sunday := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 12, schedule.HoursForDate(sunday).StartHour)
}

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		name    string
		time    types.TimeString
		date    time.Time
		want    int
		wantErr bool
	}{
		{name: "weekday opening", time: "18:00", date: weekday, want: 18 * 60},
		{name: "evening slot", time: "20:30", date: weekday, want: 20*60 + 30},
		{name: "after midnight gets day offset", time: "01:30", date: weekday, want: 25*60 + 30},
		{name: "closing boundary", time: "02:00", date: weekday, want: 26 * 60},
		{name: "weekend noon", time: "12:00", date: weekend, want: 12 * 60},
		{name: "noon on weekday is outside session", time: "12:00", date: weekday, wantErr: true},
		{name: "morning gap", time: "09:00", date: weekend, wantErr: true},
		{name: "invalid format", time: "9am", date: weekday, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := schedule.TimeToMinutes(tt.time, tt.date)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, schedule.ErrInvalidBookingTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMinutesToTime_RoundTrip(t *testing.T) {
	for _, ts := range []types.TimeString{"18:00", "20:30", "23:30", "00:00", "01:30"} {
		minutes, err := schedule.TimeToMinutes(ts, weekday)
		require.NoError(t, err)
		assert.Equal(t, ts, schedule.MinutesToTime(minutes), "round trip for %s", ts)
	}
}

func TestSessionSlots(t *testing.T) {
	weekdaySlots := schedule.SessionSlots(weekday)
	require.Len(t, weekdaySlots, 16)
	assert.Equal(t, types.TimeString("18:00"), weekdaySlots[0])
	assert.Equal(t, types.TimeString("01:30"), weekdaySlots[len(weekdaySlots)-1])

	weekendSlots := schedule.SessionSlots(weekend)
	require.Len(t, weekendSlots, 28)
	assert.Equal(t, types.TimeString("12:00"), weekendSlots[0])
	assert.Equal(t, types.TimeString("01:30"), weekendSlots[len(weekendSlots)-1])
}

func TestSlotEndTime(t *testing.T) {
	end, err := schedule.SlotEndTime("23:30", weekday)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("00:00"), end)

	end, err = schedule.SlotEndTime("01:30", weekday)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("02:00"), end)
}

func TestOperatingDate(t *testing.T) {
	// В 01:30 ночи сессия все еще принадлежит предыдущему дню
	lateNight := time.Date(2026, 9, 3, 1, 30, 0, 0, time.UTC)
	assert.Equal(t, weekday, schedule.OperatingDate(lateNight))

	evening := time.Date(2026, 9, 2, 19, 0, 0, 0, time.UTC)
	assert.Equal(t, weekday, schedule.OperatingDate(evening))

	morning := time.Date(2026, 9, 2, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, weekday, schedule.OperatingDate(morning))
}

func TestSlotMoment(t *testing.T) {
	moment, err := schedule.SlotMoment(weekday, "20:30", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 2, 20, 30, 0, 0, time.UTC), moment)

	// Слот после полуночи попадает в следующий календарный день
	moment, err = schedule.SlotMoment(weekday, "01:00", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 3, 1, 0, 0, 0, time.UTC), moment)
}

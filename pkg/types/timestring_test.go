package types_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadelounge/JL-BookingService/pkg/types"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    types.TimeString
		wantErr bool
	}{
		{name: "valid evening time", input: "20:30", want: "20:30"},
		{name: "valid after midnight", input: "01:30", want: "01:30"},
		{name: "missing leading zero", input: "9:00", wantErr: true},
		{name: "out of range hour", input: "25:00", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := types.NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, types.ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_HourMinute(t *testing.T) {
	ts := types.TimeString("20:45")
	assert.Equal(t, 20, ts.Hour())
	assert.Equal(t, 45, ts.Minute())
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   types.TimeString
		minutes int
		want    types.TimeString
	}{
		{name: "within hour", start: "20:00", minutes: 30, want: "20:30"},
		{name: "across hour", start: "20:45", minutes: 30, want: "21:15"},
		{name: "across midnight", start: "23:30", minutes: 60, want: "00:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, types.TimeString("18:00").IsBefore("20:30"))
	assert.True(t, types.TimeString("23:00").IsAfter("20:30"))
	// Лексикографическое сравнение не знает про переход через полночь,
	// вызывающие используют минуты операционного дня
	assert.True(t, types.TimeString("01:00").IsBefore("18:00"))
}

func TestTimeString_Scan(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  types.TimeString
	}{
		{name: "plain string", value: "20:30", want: "20:30"},
		{name: "time column with seconds", value: "20:30:00", want: "20:30"},
		{name: "bytes", value: []byte("01:30:00"), want: "01:30"},
		{name: "time.Time", value: time.Date(2026, 9, 5, 22, 15, 0, 0, time.UTC), want: "22:15"},
		{name: "nil", value: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts types.TimeString
			require.NoError(t, ts.Scan(tt.value))
			assert.Equal(t, tt.want, ts)
		})
	}

	t.Run("unsupported type", func(t *testing.T) {
		var ts types.TimeString
		err := ts.Scan(42)
		assert.ErrorIs(t, err, types.ErrInvalidScanValue)
	})
}

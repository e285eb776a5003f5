package get_max_duration_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadelounge/JL-BookingService/internal/domain"
	getMaxDuration "github.com/jadelounge/JL-BookingService/internal/usecase/get_max_duration"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time           { return c.now }
func (c fixedClock) Location() *time.Location { return c.now.Location() }

type fakeReservationRepo struct {
	reservations []*domain.Reservation
}

func (f *fakeReservationRepo) GetByDateAndRooms(_ context.Context, _ time.Time, _ []domain.RoomType, _ bool) ([]*domain.Reservation, error) {
	return f.reservations, nil
}

type fakeBlockRepo struct{}

func (fakeBlockRepo) GetByDateAndRoom(_ context.Context, _ time.Time, _ domain.RoomType) ([]*domain.BlockedSlot, error) {
	return nil, nil
}

var noon = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func TestGetMaxDuration_OpenEvening(t *testing.T) {
	uc := getMaxDuration.NewUseCase(&fakeReservationRepo{}, fakeBlockRepo{}, fixedClock{now: noon}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &getMaxDuration.Request{
		RoomType:  domain.RoomPoker,
		Date:      "2026-09-02",
		StartTime: "18:00",
		PartySize: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, 8.0, resp.MaxDurationHours)
	assert.Equal(t, "02:00", resp.EndTime)
	assert.True(t, resp.LimitedByClosingTime)
	assert.False(t, resp.LimitedByBookings)
}

func TestGetMaxDuration_StoppedByReservation(t *testing.T) {
	repo := &fakeReservationRepo{
		reservations: []*domain.Reservation{
			{
				RoomType:  domain.RoomPoker,
				StartTime: "21:00",
				EndTime:   "22:00",
				Status:    domain.StatusConfirmed,
			},
		},
	}
	uc := getMaxDuration.NewUseCase(repo, fakeBlockRepo{}, fixedClock{now: noon}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &getMaxDuration.Request{
		RoomType:  domain.RoomPoker,
		Date:      "2026-09-02",
		StartTime: "18:00",
		PartySize: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, 3.0, resp.MaxDurationHours)
	assert.Equal(t, "21:00", resp.EndTime)
	assert.True(t, resp.LimitedByBookings)
	assert.False(t, resp.LimitedByClosingTime)
}

func TestGetMaxDuration_SmallBarParty(t *testing.T) {
	uc := getMaxDuration.NewUseCase(&fakeReservationRepo{}, fakeBlockRepo{}, fixedClock{now: noon}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &getMaxDuration.Request{
		RoomType:  domain.RoomBar,
		Date:      "2026-09-02",
		StartTime: "20:00",
		PartySize: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, 2.0, resp.MaxDurationHours)
	assert.Equal(t, "22:00", resp.EndTime)
	assert.True(t, resp.LimitedByPartySize)
	assert.False(t, resp.LimitedByClosingTime)
}

func TestGetMaxDuration_InvalidInput(t *testing.T) {
	uc := getMaxDuration.NewUseCase(&fakeReservationRepo{}, fakeBlockRepo{}, fixedClock{now: noon}, nopLogger{})

	tests := []struct {
		name string
		req  getMaxDuration.Request
	}{
		{name: "unknown room", req: getMaxDuration.Request{RoomType: "billiards", Date: "2026-09-02", StartTime: "20:00", PartySize: 2}},
		{name: "bad date", req: getMaxDuration.Request{RoomType: domain.RoomBar, Date: "bad", StartTime: "20:00", PartySize: 2}},
		{name: "bad time", req: getMaxDuration.Request{RoomType: domain.RoomBar, Date: "2026-09-02", StartTime: "8pm", PartySize: 2}},
		{name: "zero party", req: getMaxDuration.Request{RoomType: domain.RoomBar, Date: "2026-09-02", StartTime: "20:00", PartySize: 0}},
		{name: "time outside session", req: getMaxDuration.Request{RoomType: domain.RoomBar, Date: "2026-09-02", StartTime: "10:00", PartySize: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, getMaxDuration.ErrInvalidInput)
		})
	}
}

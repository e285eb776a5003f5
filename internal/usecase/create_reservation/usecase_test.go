package create_reservation_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadelounge/JL-BookingService/internal/domain"
	reservationRepo "github.com/jadelounge/JL-BookingService/internal/infra/storage/reservation"
	createReservation "github.com/jadelounge/JL-BookingService/internal/usecase/create_reservation"
	"github.com/jadelounge/JL-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeReservationRepo struct {
	existing []*domain.Reservation

	nextID     int64
	createErrs []error // очередь ошибок для последовательных вызовов Create
	created    []*domain.Reservation
}

func (f *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	f.nextID++
	created := *res
	created.ID = f.nextID
	f.created = append(f.created, &created)
	return &created, nil
}

func (f *fakeReservationRepo) GetByDateAndRooms(_ context.Context, _ time.Time, _ []domain.RoomType, _ bool) ([]*domain.Reservation, error) {
	return f.existing, nil
}

type fakeBlockRepo struct {
	blocks []*domain.BlockedSlot
}

func (f *fakeBlockRepo) GetByDateAndRoom(_ context.Context, _ time.Time, _ domain.RoomType) ([]*domain.BlockedSlot, error) {
	return f.blocks, nil
}

type fakeWaitlist struct {
	added    []*domain.Reservation
	position int
}

func (f *fakeWaitlist) Add(_ context.Context, res *domain.Reservation) (*domain.Reservation, int, error) {
	res.Status = domain.StatusWaitlisted
	queued := *res
	queued.ID = 999
	f.added = append(f.added, &queued)
	if f.position == 0 {
		f.position = 1
	}
	return &queued, f.position, nil
}

// 2026-09-01 - вторник
var noon = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func newUseCase(repo *fakeReservationRepo, blocks *fakeBlockRepo, wl *fakeWaitlist, now time.Time) *createReservation.UseCase {
	return createReservation.NewUseCase(repo, blocks, wl, fakeTxManager{}, fixedClock{now: now}, nopLogger{})
}

func validRequest() *createReservation.Request {
	return &createReservation.Request{
		UserID:    1,
		RoomType:  domain.RoomPoker,
		Date:      time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
		StartTime: "20:00",
		PartySize: 4,
	}
}

func TestCreateReservation_ConfirmsFreeSlot(t *testing.T) {
	repo := &fakeReservationRepo{}
	wl := &fakeWaitlist{}
	uc := newUseCase(repo, &fakeBlockRepo{}, wl, noon)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.False(t, resp.Waitlisted)
	assert.Equal(t, types.TimeString("20:30"), resp.EndTime, "default duration is one slot")
	assert.Empty(t, wl.added)
}

func TestCreateReservation_ExplicitEndTime(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newUseCase(repo, &fakeBlockRepo{}, &fakeWaitlist{}, noon)

	req := validRequest()
	req.EndTime = "22:00"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("22:00"), resp.EndTime)
}

func TestCreateReservation_OccupiedSlotGoesToWaitlist(t *testing.T) {
	repo := &fakeReservationRepo{
		existing: []*domain.Reservation{
			{
				RoomType:  domain.RoomPoker,
				StartTime: "20:00",
				EndTime:   "21:00",
				Status:    domain.StatusConfirmed,
			},
		},
	}
	wl := &fakeWaitlist{}
	uc := newUseCase(repo, &fakeBlockRepo{}, wl, noon)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, resp.Waitlisted)
	assert.Equal(t, 1, resp.WaitlistPosition)
	assert.Equal(t, string(domain.StatusWaitlisted), resp.Status)
	require.Len(t, wl.added, 1)
	assert.Empty(t, repo.created, "confirmed insert must not happen")
}

func TestCreateReservation_BlockedSlotGoesToWaitlist(t *testing.T) {
	blocks := &fakeBlockRepo{
		blocks: []*domain.BlockedSlot{
			{RoomType: domain.RoomPoker, StartTime: "20:00", EndTime: "21:00"},
		},
	}
	wl := &fakeWaitlist{}
	uc := newUseCase(&fakeReservationRepo{}, blocks, wl, noon)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.True(t, resp.Waitlisted)
}

func TestCreateReservation_BookingWindow(t *testing.T) {
	tests := []struct {
		name    string
		date    time.Time
		wantErr error
	}{
		{name: "today is allowed", date: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)},
		{name: "last day of window", date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)},
		{name: "one day past window", date: time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC), wantErr: createReservation.ErrOutsideBookingWindow},
		{name: "yesterday", date: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), wantErr: createReservation.ErrOutsideBookingWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(&fakeReservationRepo{}, &fakeBlockRepo{}, &fakeWaitlist{}, noon)

			req := validRequest()
			req.Date = tt.date

			_, err := uc.Execute(context.Background(), req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCreateReservation_PostMidnightSameSession(t *testing.T) {
	// Суббота 00:30, сессия пятницы еще идет:
	// слоты до 02:00 на пятничную дату должны оставаться доступными
	lateNight := time.Date(2026, 9, 5, 0, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		date      time.Time
		startTime types.TimeString
		wantErr   error
	}{
		{name: "remaining slot of the running session", date: time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC), startTime: "01:00"},
		{name: "calendar today", date: time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC), startTime: "20:00"},
		{name: "window anchored to operating day", date: time.Date(2026, 9, 18, 0, 0, 0, 0, time.UTC), startTime: "20:00"},
		{name: "past the anchored window", date: time.Date(2026, 9, 19, 0, 0, 0, 0, time.UTC), startTime: "20:00", wantErr: createReservation.ErrOutsideBookingWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(&fakeReservationRepo{}, &fakeBlockRepo{}, &fakeWaitlist{}, lateNight)

			req := validRequest()
			req.Date = tt.date
			req.StartTime = tt.startTime

			resp, err := uc.Execute(context.Background(), req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
		})
	}
}

func TestCreateReservation_PastSlotRejected(t *testing.T) {
	evening := time.Date(2026, 9, 1, 21, 0, 0, 0, time.UTC)
	uc := newUseCase(&fakeReservationRepo{}, &fakeBlockRepo{}, &fakeWaitlist{}, evening)

	req := validRequest()
	req.Date = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	req.StartTime = "20:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, createReservation.ErrInPast)
}

func TestCreateReservation_TimeOutsideSession(t *testing.T) {
	uc := newUseCase(&fakeReservationRepo{}, &fakeBlockRepo{}, &fakeWaitlist{}, noon)

	req := validRequest()
	req.StartTime = "15:00" // будний день открывается в 18:00

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, createReservation.ErrInvalidBookingTime)
}

func TestCreateReservation_SmallBarPartyCap(t *testing.T) {
	uc := newUseCase(&fakeReservationRepo{}, &fakeBlockRepo{}, &fakeWaitlist{}, noon)

	req := validRequest()
	req.RoomType = domain.RoomBar
	req.PartySize = 2
	req.StartTime = "20:00"
	req.EndTime = "23:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, createReservation.ErrPartySizeLimit)

	// Ровно два часа допустимы
	req.EndTime = "22:00"
	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestCreateReservation_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *createReservation.Request)
	}{
		{name: "zero user", mutate: func(r *createReservation.Request) { r.UserID = 0 }},
		{name: "unknown room", mutate: func(r *createReservation.Request) { r.RoomType = "billiards" }},
		{name: "zero party", mutate: func(r *createReservation.Request) { r.PartySize = 0 }},
		{name: "party too large", mutate: func(r *createReservation.Request) { r.PartySize = 31 }},
		{name: "end before start", mutate: func(r *createReservation.Request) { r.EndTime = "19:00" }},
		{name: "unaligned duration", mutate: func(r *createReservation.Request) { r.EndTime = "20:45" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(&fakeReservationRepo{}, &fakeBlockRepo{}, &fakeWaitlist{}, noon)

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, createReservation.ErrInvalidInput)
		})
	}
}

func TestCreateReservation_RetriesOnceOnConcurrentInsert(t *testing.T) {
	repo := &fakeReservationRepo{
		createErrs: []error{reservationRepo.ErrDuplicateConfirmed, nil},
	}
	uc := newUseCase(repo, &fakeBlockRepo{}, &fakeWaitlist{}, noon)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.False(t, resp.Waitlisted)
}

func TestCreateReservation_ConcurrencyConflictAfterRetry(t *testing.T) {
	repo := &fakeReservationRepo{
		createErrs: []error{reservationRepo.ErrDuplicateConfirmed, reservationRepo.ErrDuplicateConfirmed},
	}
	uc := newUseCase(repo, &fakeBlockRepo{}, &fakeWaitlist{}, noon)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, createReservation.ErrConcurrencyConflict)
}

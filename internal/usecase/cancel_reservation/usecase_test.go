package cancel_reservation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadelounge/JL-BookingService/internal/domain"
	reservationRepo "github.com/jadelounge/JL-BookingService/internal/infra/storage/reservation"
	cancelReservation "github.com/jadelounge/JL-BookingService/internal/usecase/cancel_reservation"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeRepo struct {
	reservation *domain.Reservation
	getErr      error

	cancelled []int64
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	res := *f.reservation
	return &res, nil
}

func (f *fakeRepo) Cancel(_ context.Context, id int64) error {
	f.cancelled = append(f.cancelled, id)
	return nil
}

type fakeWaitlist struct {
	promoted *domain.Reservation
	calls    int
}

func (f *fakeWaitlist) Promote(_ context.Context, _ domain.SlotKey) (*domain.Reservation, error) {
	f.calls++
	return f.promoted, nil
}

type fakeNotifier struct {
	cancelled []int64
	promoted  []int64
	err       error
}

func (f *fakeNotifier) NotifyCancelled(_ context.Context, res *domain.Reservation) error {
	f.cancelled = append(f.cancelled, res.ID)
	return f.err
}

func (f *fakeNotifier) NotifyPromoted(_ context.Context, res *domain.Reservation) error {
	f.promoted = append(f.promoted, res.ID)
	return f.err
}

func confirmedReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:              10,
		UserID:          1,
		RoomType:        domain.RoomPoker,
		ReservationDate: time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		StartTime:       "20:00",
		EndTime:         "21:00",
		PartySize:       4,
		Status:          domain.StatusConfirmed,
	}
}

func newUseCase(repo *fakeRepo, wl *fakeWaitlist, notifier *fakeNotifier) *cancelReservation.UseCase {
	return cancelReservation.NewUseCase(repo, wl, notifier, fakeTxManager{}, nopLogger{})
}

func TestCancelReservation_OwnerCancels(t *testing.T) {
	repo := &fakeRepo{reservation: confirmedReservation()}
	wl := &fakeWaitlist{}
	notifier := &fakeNotifier{}
	uc := newUseCase(repo, wl, notifier)

	resp, err := uc.Execute(context.Background(), &cancelReservation.Request{ReservationID: 10, UserID: 1})
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.ReservationID)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Equal(t, []int64{10}, repo.cancelled)
	assert.Equal(t, 1, wl.calls, "released confirmed slot triggers promotion")
	assert.Equal(t, []int64{10}, notifier.cancelled)
}

func TestCancelReservation_PromotesNextInQueue(t *testing.T) {
	next := confirmedReservation()
	next.ID = 11
	next.UserID = 2
	next.Status = domain.StatusConfirmed

	repo := &fakeRepo{reservation: confirmedReservation()}
	wl := &fakeWaitlist{promoted: next}
	notifier := &fakeNotifier{}
	uc := newUseCase(repo, wl, notifier)

	resp, err := uc.Execute(context.Background(), &cancelReservation.Request{ReservationID: 10, UserID: 1})
	require.NoError(t, err)

	assert.Equal(t, int64(11), resp.PromotedReservationID)
	assert.Equal(t, int64(2), resp.PromotedUserID)
	assert.Equal(t, []int64{11}, notifier.promoted)
}

func TestCancelReservation_WaitlistedCancelSkipsPromotion(t *testing.T) {
	res := confirmedReservation()
	res.Status = domain.StatusWaitlisted

	repo := &fakeRepo{reservation: res}
	wl := &fakeWaitlist{}
	uc := newUseCase(repo, wl, &fakeNotifier{})

	resp, err := uc.Execute(context.Background(), &cancelReservation.Request{ReservationID: 10, UserID: 1})
	require.NoError(t, err)

	assert.Zero(t, resp.PromotedReservationID)
	assert.Equal(t, 0, wl.calls, "waitlisted entry never held the slot")
}

func TestCancelReservation_NotFound(t *testing.T) {
	repo := &fakeRepo{getErr: reservationRepo.ErrReservationNotFound}
	uc := newUseCase(repo, &fakeWaitlist{}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), &cancelReservation.Request{ReservationID: 10, UserID: 1})
	assert.ErrorIs(t, err, cancelReservation.ErrNotFound)
}

func TestCancelReservation_PermissionDenied(t *testing.T) {
	repo := &fakeRepo{reservation: confirmedReservation()}
	uc := newUseCase(repo, &fakeWaitlist{}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), &cancelReservation.Request{ReservationID: 10, UserID: 99})
	assert.ErrorIs(t, err, cancelReservation.ErrPermissionDenied)
}

func TestCancelReservation_AdminCancelsAnyReservation(t *testing.T) {
	repo := &fakeRepo{reservation: confirmedReservation()}
	uc := newUseCase(repo, &fakeWaitlist{}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), &cancelReservation.Request{ReservationID: 10, UserID: 99, IsAdmin: true})
	assert.NoError(t, err)
}

func TestCancelReservation_AlreadyCancelled(t *testing.T) {
	res := confirmedReservation()
	res.Status = domain.StatusCancelled

	repo := &fakeRepo{reservation: res}
	uc := newUseCase(repo, &fakeWaitlist{}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), &cancelReservation.Request{ReservationID: 10, UserID: 1})
	assert.ErrorIs(t, err, cancelReservation.ErrAlreadyCancelled)
}

func TestCancelReservation_NotificationFailureIsSwallowed(t *testing.T) {
	repo := &fakeRepo{reservation: confirmedReservation()}
	notifier := &fakeNotifier{err: errors.New("broker down")}
	uc := newUseCase(repo, &fakeWaitlist{}, notifier)

	resp, err := uc.Execute(context.Background(), &cancelReservation.Request{ReservationID: 10, UserID: 1})
	require.NoError(t, err, "notification delivery is best-effort")
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
}

package get_max_duration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jadelounge/JL-BookingService/internal/availability"
	"github.com/jadelounge/JL-BookingService/internal/domain"
	"github.com/jadelounge/JL-BookingService/internal/schedule"
	"github.com/jadelounge/JL-BookingService/pkg/types"
)

// UseCase расчёт максимальной длительности бронирования от заданного слота
type UseCase struct {
	reservationRepo ReservationRepository
	blockRepo       BlockedSlotRepository
	timeProvider    TimeProvider
	log             Logger
}

func NewUseCase(
	reservationRepo ReservationRepository,
	blockRepo BlockedSlotRepository,
	timeProvider TimeProvider,
	log Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		blockRepo:       blockRepo,
		timeProvider:    timeProvider,
		log:             log,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.log.Info("[get_max_duration.Execute] Запрос длительности: roomType=%s, date=%s, startTime=%s, partySize=%d",
		req.RoomType, req.Date, req.StartTime, req.PartySize)

	if !req.RoomType.IsValid() {
		return nil, fmt.Errorf("%w: unknown room type %q", ErrInvalidInput, req.RoomType)
	}
	if req.PartySize < domain.MinPartySize || req.PartySize > domain.MaxPartySize {
		return nil, fmt.Errorf("%w: partySize must be between %d and %d", ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
	}

	date, err := time.ParseInLocation(domain.DateFormat, req.Date, uc.timeProvider.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: date must be in format YYYY-MM-DD", ErrInvalidInput)
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: startTime must be in format HH:MM", ErrInvalidInput)
	}

	snap, err := uc.loadSnapshot(ctx, req.RoomType, date)
	if err != nil {
		return nil, err
	}

	now := uc.timeProvider.Now()
	statuses, err := availability.SlotStatuses(req.RoomType, snap, now)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidBookingTime) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.log.Error("[get_max_duration.Execute] Ошибка расчета статусов слотов: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	limit, err := availability.MaxDuration(startTime, statuses, req.PartySize, req.RoomType, date)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidBookingTime) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.log.Error("[get_max_duration.Execute] Ошибка расчёта длительности: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	resp := &Response{
		RoomType:             string(req.RoomType),
		Date:                 req.Date,
		StartTime:            startTime.String(),
		MaxDurationHours:     limit.Hours,
		LimitedByClosingTime: limit.LimitedByClosingTime,
		LimitedByBookings:    limit.LimitedByBookings,
		LimitedByPartySize:   limit.LimitedByPartySize,
	}
	if limit.Hours > 0 {
		startMinute, err := schedule.TimeToMinutes(startTime, date)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		resp.EndTime = schedule.MinutesToTime(startMinute + int(limit.Hours*60)).String()
	}

	return resp, nil
}

func (uc *UseCase) loadSnapshot(ctx context.Context, roomType domain.RoomType, date time.Time) (*availability.DaySnapshot, error) {
	blocks, err := uc.blockRepo.GetByDateAndRoom(ctx, date, roomType)
	if err != nil {
		uc.log.Error("[get_max_duration.Execute] Ошибка получения блокировок: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	roomTypes := []domain.RoomType{roomType}
	if sharedWith, shared := roomType.SharesSpaceWith(); shared {
		roomTypes = append(roomTypes, sharedWith)
	}

	reservations, err := uc.reservationRepo.GetByDateAndRooms(ctx, date, roomTypes, false)
	if err != nil {
		uc.log.Error("[get_max_duration.Execute] Ошибка получения бронирований: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	snap := &availability.DaySnapshot{Date: date, Blocks: blocks}
	for _, res := range reservations {
		if res.RoomType == roomType {
			snap.RoomReservations = append(snap.RoomReservations, res)
		} else {
			snap.SharedRoomReservations = append(snap.SharedRoomReservations, res)
		}
	}
	return snap, nil
}

package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/jadelounge/JL-BookingService/internal/availability"
	"github.com/jadelounge/JL-BookingService/internal/domain"
	"github.com/jadelounge/JL-BookingService/internal/schedule"
)

// UseCase построение сетки слотов зала на операционный день
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
	uc.log.Info("[get_available_slots.Execute] Запрос слотов: roomType=%s, date=%s", req.RoomType, req.Date)

	if !req.RoomType.IsValid() {
		return nil, fmt.Errorf("%w: unknown room type %q", ErrInvalidInput, req.RoomType)
	}
	if req.DurationHours < 0 {
		return nil, fmt.Errorf("%w: durationHours must not be negative", ErrInvalidInput)
	}

	date, err := time.ParseInLocation(domain.DateFormat, req.Date, uc.timeProvider.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: date must be in format YYYY-MM-DD", ErrInvalidInput)
	}

	snap, err := uc.loadSnapshot(ctx, req.RoomType, date)
	if err != nil {
		return nil, err
	}

	now := uc.timeProvider.Now()
	statuses, err := availability.SlotStatuses(req.RoomType, snap, now)
	if err != nil {
		uc.log.Error("[get_available_slots.Execute] Ошибка расчета статусов слотов: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	resp := &Response{
		RoomType: string(req.RoomType),
		Date:     req.Date,
		Slots:    make([]SlotInfo, 0, len(statuses)),
	}

	for _, slot := range schedule.SessionSlots(date) {
		endTime, err := schedule.SlotEndTime(slot, date)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		resp.Slots = append(resp.Slots, SlotInfo{
			StartTime: slot.String(),
			EndTime:   endTime.String(),
			Status:    string(statuses[slot]),
		})
	}

	available, err := availability.AvailableSlots(req.RoomType, snap, now)
	if err != nil {
		uc.log.Error("[get_available_slots.Execute] Ошибка расчета свободных слотов: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	for _, slot := range available {
		resp.AvailableSlots = append(resp.AvailableSlots, slot.String())
	}

	if req.DurationHours > 0 {
		ranges, err := availability.ConsecutiveAvailableSlots(req.RoomType, snap, req.DurationHours, now)
		if err != nil {
			uc.log.Error("[get_available_slots.Execute] Ошибка расчета последовательных слотов: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		resp.ConsecutiveRanges = make([][]string, 0, len(ranges))
		for _, r := range ranges {
			chain := make([]string, 0, len(r))
			for _, slot := range r {
				chain = append(chain, slot.String())
			}
			resp.ConsecutiveRanges = append(resp.ConsecutiveRanges, chain)
		}
	}

	return resp, nil
}

func (uc *UseCase) loadSnapshot(ctx context.Context, roomType domain.RoomType, date time.Time) (*availability.DaySnapshot, error) {
	blocks, err := uc.blockRepo.GetByDateAndRoom(ctx, date, roomType)
	if err != nil {
		uc.log.Error("[get_available_slots.Execute] Ошибка получения блокировок: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	roomTypes := []domain.RoomType{roomType}
	if sharedWith, shared := roomType.SharesSpaceWith(); shared {
		roomTypes = append(roomTypes, sharedWith)
	}

	reservations, err := uc.reservationRepo.GetByDateAndRooms(ctx, date, roomTypes, false)
	if err != nil {
		uc.log.Error("[get_available_slots.Execute] Ошибка получения бронирований: %v", err)
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

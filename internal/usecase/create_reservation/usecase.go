package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jadelounge/JL-BookingService/internal/availability"
	"github.com/jadelounge/JL-BookingService/internal/domain"
	reservationRepo "github.com/jadelounge/JL-BookingService/internal/infra/storage/reservation"
	"github.com/jadelounge/JL-BookingService/internal/schedule"
	"github.com/jadelounge/JL-BookingService/pkg/types"
)

// UseCase use case для создания бронирования
// Свободный слот дает подтвержденное бронирование, занятый - место
// в листе ожидания. Проверка доступности и вставка выполняются в одной
// сериализуемой транзакции на ключ (дата, время, комната)
type UseCase struct {
	reservationRepo ReservationRepository
	blockRepo       BlockedSlotRepository
	waitlist        WaitlistManager
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	blockRepo BlockedSlotRepository,
	waitlist WaitlistManager,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		blockRepo:       blockRepo,
		waitlist:        waitlist,
		txManager:       txManager,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// При обнаружении гонки (параллельная вставка в тот же слот) операция
// повторяется целиком один раз, затем возвращается ErrConcurrencyConflict
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, room=%s, date=%s, time=%s, party=%d",
		req.UserID, req.RoomType, req.Date.Format(domain.DateFormat), req.StartTime, req.PartySize)

	resp, err := uc.execute(ctx, req)
	if errors.Is(err, reservationRepo.ErrDuplicateConfirmed) {
		uc.logger.Warn("CreateReservation: concurrent insert detected, retrying once: user=%d, time=%s",
			req.UserID, req.StartTime)
		resp, err = uc.execute(ctx, req)
		if errors.Is(err, reservationRepo.ErrDuplicateConfirmed) {
			return nil, ErrConcurrencyConflict
		}
	}

	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время в операционном поясе
	now := uc.timeProvider.Now()

	// 3. Окно бронирования: сегодня <= дата <= сегодня + 14 дней
	if err := validateBookingWindow(req.Date, now); err != nil {
		uc.logger.Warn("CreateReservation: date %s outside booking window", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 4. Запрошенный слот не должен быть в прошлом
	if err := validateNotInPast(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateReservation: past or invalid slot: %v", err)
		return nil, err
	}

	// 5. Вычисляем время окончания (по умолчанию начало + 30 минут)
	endTime, err := resolveEndTime(req)
	if err != nil {
		uc.logger.Warn("CreateReservation: end time resolution failed: %v", err)
		return nil, err
	}

	// 6. Ограничение маленьких компаний в баре
	if err := validatePartySizeCap(req, endTime); err != nil {
		uc.logger.Warn("CreateReservation: party size cap: user=%d, party=%d", req.UserID, req.PartySize)
		return nil, err
	}

	var result *Response

	// 7. Проверка доступности и запись в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Снимок дня: блокировки своей комнаты и активные бронирования
		// своей и соседней комнаты (FOR UPDATE внутри транзакции)
		snap, err := uc.loadSnapshot(txCtx, req)
		if err != nil {
			return err
		}

		// 7.2. Каждый 30-минутный слот диапазона должен быть свободен
		free, err := uc.rangeAvailable(req, endTime, snap, now)
		if err != nil {
			return err
		}

		reservation := &domain.Reservation{
			UserID:          req.UserID,
			RoomType:        req.RoomType,
			ReservationDate: schedule.DateOnly(req.Date),
			StartTime:       req.StartTime,
			EndTime:         endTime,
			PartySize:       req.PartySize,
			Status:          domain.StatusConfirmed,
			Notes:           req.Notes,
		}

		// 7.3. Свободно - подтверждаем сразу
		if free {
			created, err := uc.reservationRepo.Create(txCtx, reservation)
			if err != nil {
				if errors.Is(err, reservationRepo.ErrDuplicateConfirmed) {
					return err
				}
				uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
				return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
			}
			result = fromDomain(created, false, 0)
			return nil
		}

		// 7.4. Занято - ставим в лист ожидания ключа (дата, время начала, комната)
		queued, position, err := uc.waitlist.Add(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to enqueue: %v", err)
			return fmt.Errorf("%w: failed to enqueue: %v", ErrInternal, err)
		}
		result = fromDomain(queued, true, position)
		return nil
	})

	if err != nil {
		return nil, err
	}

	if result.Waitlisted {
		uc.logger.Info("CreateReservation: reservation id=%d waitlisted at position %d",
			result.ID, result.WaitlistPosition)
	} else {
		uc.logger.Info("CreateReservation: reservation id=%d confirmed", result.ID)
	}

	return result, nil
}

// loadSnapshot выбирает данные дня, нужные проверке доступности
func (uc *UseCase) loadSnapshot(ctx context.Context, req *Request) (*availability.DaySnapshot, error) {
	date := schedule.DateOnly(req.Date)

	blocks, err := uc.blockRepo.GetByDateAndRoom(ctx, date, req.RoomType)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to get blocked slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked slots: %v", ErrInternal, err)
	}

	rooms := []domain.RoomType{req.RoomType}
	sharedWith, shared := req.RoomType.SharesSpaceWith()
	if shared {
		rooms = append(rooms, sharedWith)
	}

	reservations, err := uc.reservationRepo.GetByDateAndRooms(ctx, date, rooms, false)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	snap := &availability.DaySnapshot{Date: date}
	for _, res := range reservations {
		if res.RoomType == req.RoomType {
			snap.RoomReservations = append(snap.RoomReservations, res)
		} else {
			snap.SharedRoomReservations = append(snap.SharedRoomReservations, res)
		}
	}
	snap.Blocks = blocks

	return snap, nil
}

// rangeAvailable проверяет доступность каждого 30-минутного слота
// диапазона [start, end)
func (uc *UseCase) rangeAvailable(req *Request, endTime types.TimeString, snap *availability.DaySnapshot, now time.Time) (bool, error) {
	startMinute, err := schedule.TimeToMinutes(req.StartTime, req.Date)
	if err != nil {
		return false, wrapScheduleErr(err)
	}
	endMinute, err := schedule.TimeToMinutes(endTime, req.Date)
	if err != nil {
		return false, wrapScheduleErr(err)
	}

	for minute := startMinute; minute < endMinute; minute += domain.SlotDurationMinutes {
		free, err := availability.IsSlotAvailable(req.RoomType, schedule.MinutesToTime(minute), snap, now)
		if err != nil {
			return false, wrapScheduleErr(err)
		}
		if !free {
			return false, nil
		}
	}

	return true, nil
}

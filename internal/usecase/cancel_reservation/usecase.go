package cancel_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/jadelounge/JL-BookingService/internal/domain"
	reservationRepo "github.com/jadelounge/JL-BookingService/internal/infra/storage/reservation"
)

// UseCase отмена бронирования с продвижением листа ожидания
type UseCase struct {
	reservationRepo ReservationRepository
	waitlist        WaitlistManager
	notifier        Notifier
	txManager       TransactionManager
	log             Logger
}

func NewUseCase(
	reservationRepo ReservationRepository,
	waitlist WaitlistManager,
	notifier Notifier,
	txManager TransactionManager,
	log Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		waitlist:        waitlist,
		notifier:        notifier,
		txManager:       txManager,
		log:             log,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.log.Info("[cancel_reservation.Execute] Отмена бронирования: reservationID=%d, userID=%d", req.ReservationID, req.UserID)

	if req.ReservationID <= 0 || req.UserID <= 0 {
		return nil, fmt.Errorf("%w: reservationID and userID must be positive", ErrInvalidInput)
	}

	var cancelled *domain.Reservation
	var promoted *domain.Reservation

	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		// 1. Загружаем бронирование с блокировкой строки
		res, err := uc.reservationRepo.GetByID(ctx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return fmt.Errorf("%w: id=%d", ErrNotFound, req.ReservationID)
			}
			uc.log.Error("[cancel_reservation.Execute] Ошибка получения бронирования: %v", err)
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		// 2. Отменять может только владелец или администратор
		if res.UserID != req.UserID && !req.IsAdmin {
			return fmt.Errorf("%w: reservation %d belongs to another user", ErrPermissionDenied, req.ReservationID)
		}

		// 3. Повторная отмена запрещена
		if !res.CanBeCancelled() {
			return fmt.Errorf("%w: id=%d", ErrAlreadyCancelled, req.ReservationID)
		}

		wasConfirmed := res.Status == domain.StatusConfirmed

		// 4. Отменяем бронирование
		if err := uc.reservationRepo.Cancel(ctx, res.ID); err != nil {
			uc.log.Error("[cancel_reservation.Execute] Ошибка отмены бронирования: %v", err)
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
		cancelled = res

		// 5. Освободился подтверждённый слот - продвигаем первого из листа ожидания
		if wasConfirmed {
			promoted, err = uc.waitlist.Promote(ctx, res.Key())
			if err != nil {
				uc.log.Error("[cancel_reservation.Execute] Ошибка продвижения листа ожидания: %v", err)
				return fmt.Errorf("%w: %v", ErrInternal, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// 6. Уведомления отправляем после коммита, ошибки доставки не откатывают отмену
	uc.sendNotifications(ctx, cancelled, promoted)

	resp := &Response{
		ReservationID: cancelled.ID,
		Status:        string(domain.StatusCancelled),
	}
	if promoted != nil {
		resp.PromotedReservationID = promoted.ID
		resp.PromotedUserID = promoted.UserID
		uc.log.Info("[cancel_reservation.Execute] Из листа ожидания продвинуто бронирование %d (userID=%d)", promoted.ID, promoted.UserID)
	}

	uc.log.Info("[cancel_reservation.Execute] Бронирование %d отменено", cancelled.ID)
	return resp, nil
}

func (uc *UseCase) sendNotifications(ctx context.Context, cancelled, promoted *domain.Reservation) {
	if err := uc.notifier.NotifyCancelled(ctx, cancelled); err != nil {
		uc.log.Warn("[cancel_reservation.Execute] Не удалось отправить уведомление об отмене: %v", err)
	}
	if promoted != nil {
		if err := uc.notifier.NotifyPromoted(ctx, promoted); err != nil {
			uc.log.Warn("[cancel_reservation.Execute] Не удалось отправить уведомление о продвижении: %v", err)
		}
	}
}

package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jadelounge/JL-BookingService/internal/domain"
	reservationRepo "github.com/jadelounge/JL-BookingService/internal/infra/storage/reservation"
	"github.com/jadelounge/JL-BookingService/internal/service/reservations/models"
	"github.com/jadelounge/JL-BookingService/pkg/ptr"
)

// Service сервис чтения бронирований
type Service struct {
	reservationRepo ReservationRepository
	waitlist        WaitlistManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	waitlist WaitlistManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		waitlist:        waitlist,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит только своё бронирование, администратор - любое
func (s *Service) GetByID(ctx context.Context, id int64, userID int64, isAdmin bool) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, userID)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if res.UserID != userID && !isAdmin {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	resp := models.FromDomainReservation(res)
	if err := s.fillWaitlistPosition(ctx, res, resp); err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return resp, nil
}

// GetUserReservations получает историю бронирований пользователя
// с опциональным фильтром по статусу
func (s *Service) GetUserReservations(ctx context.Context, req *models.GetUserReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: fetching reservations for user=%d", req.UserID)

	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	var statusFilter *domain.ReservationStatus
	if req.Status != nil {
		status, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		statusFilter = &status
	}

	list, err := s.reservationRepo.GetByUserID(ctx, req.UserID, statusFilter)
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	resp, err := s.buildList(ctx, list)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetUserReservations: found %d reservations for user=%d", len(resp.Reservations), req.UserID)
	return resp, nil
}

// GetRoomReservations получает бронирования зала на дату (админский метод)
func (s *Service) GetRoomReservations(ctx context.Context, req *models.GetRoomReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetRoomReservations: fetching reservations for room=%s, date=%s", req.RoomType, req.Date)

	roomType := domain.RoomType(req.RoomType)
	if !roomType.IsValid() {
		return nil, fmt.Errorf("%w: unknown room type %q", ErrInvalidInput, req.RoomType)
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be in format YYYY-MM-DD", ErrInvalidInput)
	}

	list, err := s.reservationRepo.GetByDateAndRooms(ctx, date, []domain.RoomType{roomType}, req.IncludeInactive)
	if err != nil {
		s.logger.Error("GetRoomReservations: repository error for room=%s: %v", req.RoomType, err)
		return nil, fmt.Errorf("%w: GetRoomReservations - repository error: %v", ErrInternal, err)
	}

	resp, err := s.buildList(ctx, list)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetRoomReservations: found %d reservations for room=%s", len(resp.Reservations), req.RoomType)
	return resp, nil
}

func (s *Service) buildList(ctx context.Context, list []*domain.Reservation) (*models.ReservationListResponse, error) {
	resp := &models.ReservationListResponse{
		Reservations: make([]models.ReservationResponse, 0, len(list)),
	}
	for _, res := range list {
		dto := models.FromDomainReservation(res)
		if err := s.fillWaitlistPosition(ctx, res, dto); err != nil {
			return nil, err
		}
		resp.Reservations = append(resp.Reservations, *dto)
	}
	return resp, nil
}

func (s *Service) fillWaitlistPosition(ctx context.Context, res *domain.Reservation, dto *models.ReservationResponse) error {
	if !res.IsWaitlisted() {
		return nil
	}
	pos, err := s.waitlist.Position(ctx, res)
	if err != nil {
		s.logger.Error("fillWaitlistPosition: failed for reservation id=%d: %v", res.ID, err)
		return fmt.Errorf("%w: waitlist position: %v", ErrInternal, err)
	}
	dto.WaitlistPosition = ptr.Ptr(pos)
	return nil
}

package blockedslots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jadelounge/JL-BookingService/internal/domain"
	blockRepo "github.com/jadelounge/JL-BookingService/internal/infra/storage/blockedslot"
	"github.com/jadelounge/JL-BookingService/internal/schedule"
	"github.com/jadelounge/JL-BookingService/internal/service/blockedslots/models"
	"github.com/jadelounge/JL-BookingService/pkg/types"
)

// Service сервис управления блокировками слотов
type Service struct {
	blockRepo BlockedSlotRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(blockRepo BlockedSlotRepository, logger Logger) *Service {
	return &Service{
		blockRepo: blockRepo,
		logger:    logger,
	}
}

// Create блокирует диапазон слотов зала на дату
func (s *Service) Create(ctx context.Context, req *models.CreateBlockedSlotRequest) (*models.BlockedSlotResponse, error) {
	s.logger.Info("Create: blocking slots for room=%s, date=%s, %s-%s", req.RoomType, req.BlockDate, req.StartTime, req.EndTime)

	block, err := s.validateCreate(req)
	if err != nil {
		return nil, err
	}

	created, err := s.blockRepo.Create(ctx, block)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: blocked slots id=%d for room=%s", created.ID, created.RoomType)
	return models.FromDomainBlockedSlot(created), nil
}

// List получает блокировки зала на дату
func (s *Service) List(ctx context.Context, req *models.GetBlockedSlotsRequest) (*models.BlockedSlotListResponse, error) {
	s.logger.Info("List: fetching blocked slots for room=%s, date=%s", req.RoomType, req.Date)

	roomType := domain.RoomType(req.RoomType)
	if !roomType.IsValid() {
		return nil, fmt.Errorf("%w: unknown room type %q", ErrInvalidInput, req.RoomType)
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be in format YYYY-MM-DD", ErrInvalidInput)
	}

	blocks, err := s.blockRepo.GetByDateAndRoom(ctx, date, roomType)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.BlockedSlotListResponse{
		BlockedSlots: make([]models.BlockedSlotResponse, 0, len(blocks)),
	}
	for _, block := range blocks {
		resp.BlockedSlots = append(resp.BlockedSlots, *models.FromDomainBlockedSlot(block))
	}

	s.logger.Info("List: found %d blocked slots for room=%s", len(resp.BlockedSlots), req.RoomType)
	return resp, nil
}

// Delete снимает блокировку
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: removing blocked slot id=%d", id)

	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if err := s.blockRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			s.logger.Warn("Delete: blocked slot id=%d not found", id)
			return ErrBlockNotFound
		}
		s.logger.Error("Delete: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: blocked slot id=%d removed", id)
	return nil
}

func (s *Service) validateCreate(req *models.CreateBlockedSlotRequest) (*domain.BlockedSlot, error) {
	roomType := domain.RoomType(req.RoomType)
	if !roomType.IsValid() {
		return nil, fmt.Errorf("%w: unknown room type %q", ErrInvalidInput, req.RoomType)
	}

	date, err := time.Parse(domain.DateFormat, req.BlockDate)
	if err != nil {
		return nil, fmt.Errorf("%w: blockDate must be in format YYYY-MM-DD", ErrInvalidInput)
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: startTime must be in format HH:MM", ErrInvalidInput)
	}
	endTime, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: endTime must be in format HH:MM", ErrInvalidInput)
	}

	startMinute, err := schedule.TimeToMinutes(startTime, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}
	endMinute, err := schedule.TimeToMinutes(endTime, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}

	if endMinute <= startMinute {
		return nil, fmt.Errorf("%w: endTime must be after startTime", ErrInvalidTimeRange)
	}
	if startMinute%domain.SlotDurationMinutes != 0 || endMinute%domain.SlotDurationMinutes != 0 {
		return nil, fmt.Errorf("%w: times must be aligned to %d-minute slots", ErrInvalidTimeRange, domain.SlotDurationMinutes)
	}
	if endMinute > schedule.ClosingMinute {
		return nil, fmt.Errorf("%w: endTime is past closing time", ErrInvalidTimeRange)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return &domain.BlockedSlot{
		RoomType:  roomType,
		BlockDate: date,
		StartTime: startTime,
		EndTime:   endTime,
		Reason:    req.Reason,
	}, nil
}

package get_collaborator_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/availability"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	collaboratorRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/collaborator"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// UseCase use case получения свободного времени сотрудника
type UseCase struct {
	collaboratorRepo CollaboratorRepository
	schedules        ScheduleReader
	appointmentRepo  AppointmentRepository
	config           Config
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	collaboratorRepo CollaboratorRepository,
	schedules ScheduleReader,
	appointmentRepo AppointmentRepository,
	config Config,
	logger Logger,
) *UseCase {
	return &UseCase{
		collaboratorRepo: collaboratorRepo,
		schedules:        schedules,
		appointmentRepo:  appointmentRepo,
		config:           config,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения свободного времени сотрудника
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCollaboratorSlots: collaborator=%d, date=%s, interval=%d, duration=%d",
		req.CollaboratorID, req.Date.Format(domain.DateFormat), req.SlotIntervalMinutes, req.ServiceDurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCollaboratorSlots: validation failed: %v", err)
		return nil, err
	}

	resp := &Response{
		CollaboratorID:         req.CollaboratorID,
		Date:                   req.Date,
		SlotIntervalMinutes:    req.SlotIntervalMinutes,
		ServiceDurationMinutes: req.ServiceDurationMinutes,
		Slots:                  []types.TimeString{},
	}
	if resp.SlotIntervalMinutes == 0 {
		resp.SlotIntervalMinutes = domain.DefaultCollaboratorSlotIntervalMinutes
	}
	if resp.ServiceDurationMinutes == 0 {
		resp.ServiceDurationMinutes = domain.DefaultCollaboratorServiceMinutes
	}

	// 2. Проверка даты
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now, uc.config.AdvanceBookingDays); err != nil {
		uc.logger.Warn("GetCollaboratorSlots: date validation failed: %v", err)
		return nil, err
	}

	// 3. Сотрудник
	collaborator, err := uc.collaboratorRepo.GetByID(ctx, req.CollaboratorID)
	if err != nil {
		if errors.Is(err, collaboratorRepo.ErrCollaboratorNotFound) {
			uc.logger.Warn("GetCollaboratorSlots: collaborator id=%d not found", req.CollaboratorID)
			return nil, ErrCollaboratorNotFound
		}
		uc.logger.Error("GetCollaboratorSlots: failed to get collaborator id=%d: %v", req.CollaboratorID, err)
		return nil, fmt.Errorf("%w: failed to get collaborator: %v", ErrInternal, err)
	}

	if !collaborator.Active {
		uc.logger.Info("GetCollaboratorSlots: collaborator id=%d is inactive", req.CollaboratorID)
		return resp, nil
	}

	// 4. Расписание и активные записи на дату
	week, err := uc.schedules.GetSchedule(ctx, req.CollaboratorID)
	if err != nil {
		uc.logger.Error("GetCollaboratorSlots: failed to get schedule for collaborator id=%d: %v", req.CollaboratorID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	existing, err := uc.appointmentRepo.GetByCollaboratorAndDate(ctx, req.CollaboratorID, req.Date, false)
	if err != nil {
		uc.logger.Error("GetCollaboratorSlots: failed to get appointments for collaborator id=%d: %v", req.CollaboratorID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 5. Генерация слотов
	slots, err := availability.CollaboratorSlots(week, req.Date, resp.SlotIntervalMinutes, existing, resp.ServiceDurationMinutes)
	if err != nil {
		uc.logger.Error("GetCollaboratorSlots: malformed data for collaborator id=%d: %v", req.CollaboratorID, err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	resp.Slots = filterNotice(slots, req.Date, now, uc.config.MinNoticeMinutes)

	uc.logger.Info("GetCollaboratorSlots: %d free slots for collaborator=%d on %s (%d appointments)",
		len(resp.Slots), req.CollaboratorID, req.Date.Format(domain.DateFormat), len(existing))

	return resp, nil
}

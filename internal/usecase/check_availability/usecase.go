package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/availability"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	collaboratorRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/collaborator"
)

// UseCase use case проверки, работает ли сотрудник в указанное время
type UseCase struct {
	collaboratorRepo CollaboratorRepository
	schedules        ScheduleReader
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(collaboratorRepo CollaboratorRepository, schedules ScheduleReader, logger Logger) *UseCase {
	return &UseCase{
		collaboratorRepo: collaboratorRepo,
		schedules:        schedules,
		logger:           logger,
	}
}

// Execute выполняет проверку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: collaborator=%d, date=%s, time=%s",
		req.CollaboratorID, req.Date.Format(domain.DateFormat), req.Time)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	collaborator, err := uc.collaboratorRepo.GetByID(ctx, req.CollaboratorID)
	if err != nil {
		if errors.Is(err, collaboratorRepo.ErrCollaboratorNotFound) {
			uc.logger.Warn("CheckAvailability: collaborator id=%d not found", req.CollaboratorID)
			return nil, ErrCollaboratorNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get collaborator id=%d: %v", req.CollaboratorID, err)
		return nil, fmt.Errorf("%w: failed to get collaborator: %v", ErrInternal, err)
	}

	week, err := uc.schedules.GetSchedule(ctx, req.CollaboratorID)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get schedule for collaborator id=%d: %v", req.CollaboratorID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	result, err := availability.CheckCollaborator(collaborator, week, req.Date, req.Time)
	if err != nil {
		uc.logger.Error("CheckAvailability: malformed schedule for collaborator id=%d: %v", req.CollaboratorID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if !result.Available {
		uc.logger.Info("CheckAvailability: collaborator=%d unavailable at %s %s: %s",
			req.CollaboratorID, req.Date.Format(domain.DateFormat), req.Time, result.Reason)
	}

	return &Response{
		CollaboratorID: req.CollaboratorID,
		Date:           req.Date,
		Time:           req.Time,
		Available:      result.Available,
		Reason:         result.Reason,
	}, nil
}

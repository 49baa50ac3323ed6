package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/availability"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	collaboratorRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/collaborator"
	hoursRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/hours"
	"github.com/m04kA/SMC-SalonService/internal/service/schedule/models"
)

// Service сервис часов работы салонов и расписаний сотрудников
type Service struct {
	hoursRepo        HoursRepository
	collaboratorRepo CollaboratorRepository
	cache            ScheduleCache
	txManager        TransactionManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	hoursRepo HoursRepository,
	collaboratorRepo CollaboratorRepository,
	cache ScheduleCache,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		hoursRepo:        hoursRepo,
		collaboratorRepo: collaboratorRepo,
		cache:            cache,
		txManager:        txManager,
		logger:           logger,
	}
}

// GetOperatingHours возвращает часы работы салона на неделю
func (s *Service) GetOperatingHours(ctx context.Context, businessID int64) (*models.OperatingHoursResponse, error) {
	if _, err := s.getOwner(ctx, businessID); err != nil {
		return nil, err
	}

	week, err := s.cache.GetByBusiness(ctx, businessID)
	if err != nil {
		s.logger.Error("GetOperatingHours: failed to load hours for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetOperatingHours - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainOperatingHours(businessID, week), nil
}

// UpdateOperatingHours заменяет часы работы салона
// Доступно только владельцу салона
func (s *Service) UpdateOperatingHours(ctx context.Context, businessID int64, req *models.UpdateOperatingHoursRequest) (*models.OperatingHoursResponse, error) {
	s.logger.Info("UpdateOperatingHours: business=%d, user=%d, days=%d", businessID, req.UserID, len(req.Days))

	if err := s.checkOwner(ctx, businessID, req.UserID); err != nil {
		return nil, err
	}

	week, err := req.ToDomain(businessID)
	if err != nil {
		s.logger.Warn("UpdateOperatingHours: invalid request for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := availability.ValidateOperatingHours(week); err != nil {
		s.logger.Warn("UpdateOperatingHours: validation failed for business=%d: %v", businessID, err)
		message := strings.TrimPrefix(err.Error(), availability.ErrInvalidOperatingHours.Error()+": ")
		return nil, &ValidationError{Message: message}
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.hoursRepo.ReplaceWeek(txCtx, businessID, week)
	})
	if err != nil {
		s.logger.Error("UpdateOperatingHours: failed to save hours for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: UpdateOperatingHours - repository error: %v", ErrInternal, err)
	}

	s.cache.InvalidateBusiness(ctx, businessID)

	s.logger.Info("UpdateOperatingHours: successfully updated hours for business=%d", businessID)
	return models.FromDomainOperatingHours(businessID, week), nil
}

// GetCollaboratorSchedule возвращает недельное расписание сотрудника
func (s *Service) GetCollaboratorSchedule(ctx context.Context, collaboratorID int64) (*models.ScheduleResponse, error) {
	if _, err := s.getCollaborator(ctx, collaboratorID); err != nil {
		return nil, err
	}

	week, err := s.cache.GetSchedule(ctx, collaboratorID)
	if err != nil {
		s.logger.Error("GetCollaboratorSchedule: failed to load schedule for collaborator=%d: %v", collaboratorID, err)
		return nil, fmt.Errorf("%w: GetCollaboratorSchedule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(collaboratorID, week), nil
}

// UpdateCollaboratorSchedule заменяет расписание сотрудника
// Доступно только владельцу салона, в котором работает сотрудник
func (s *Service) UpdateCollaboratorSchedule(ctx context.Context, collaboratorID int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("UpdateCollaboratorSchedule: collaborator=%d, user=%d, days=%d", collaboratorID, req.UserID, len(req.Days))

	collaborator, err := s.getCollaborator(ctx, collaboratorID)
	if err != nil {
		return nil, err
	}

	if err := s.checkOwner(ctx, collaborator.BusinessID, req.UserID); err != nil {
		return nil, err
	}

	week, err := req.ToDomain(collaboratorID)
	if err != nil {
		s.logger.Warn("UpdateCollaboratorSchedule: invalid request for collaborator=%d: %v", collaboratorID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if result := availability.ValidateSchedule(week); !result.Valid {
		s.logger.Warn("UpdateCollaboratorSchedule: validation failed for collaborator=%d: %s", collaboratorID, result.Error)
		return nil, &ValidationError{Message: result.Error}
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.collaboratorRepo.ReplaceSchedule(txCtx, collaboratorID, week)
	})
	if err != nil {
		s.logger.Error("UpdateCollaboratorSchedule: failed to save schedule for collaborator=%d: %v", collaboratorID, err)
		return nil, fmt.Errorf("%w: UpdateCollaboratorSchedule - repository error: %v", ErrInternal, err)
	}

	s.cache.InvalidateCollaborator(ctx, collaboratorID)

	s.logger.Info("UpdateCollaboratorSchedule: successfully updated schedule for collaborator=%d", collaboratorID)
	return models.FromDomainSchedule(collaboratorID, week), nil
}

// Вспомогательные методы

func (s *Service) getOwner(ctx context.Context, businessID int64) (int64, error) {
	ownerID, err := s.hoursRepo.GetBusinessOwner(ctx, businessID)
	if err != nil {
		if errors.Is(err, hoursRepo.ErrBusinessNotFound) {
			s.logger.Warn("business id=%d not found", businessID)
			return 0, ErrBusinessNotFound
		}
		s.logger.Error("failed to get owner of business id=%d: %v", businessID, err)
		return 0, fmt.Errorf("%w: getOwner - repository error: %v", ErrInternal, err)
	}
	return ownerID, nil
}

// checkOwner проверяет, что пользователь владелец салона
func (s *Service) checkOwner(ctx context.Context, businessID, userID int64) error {
	ownerID, err := s.getOwner(ctx, businessID)
	if err != nil {
		return err
	}

	if ownerID != userID {
		s.logger.Warn("checkOwner: user=%d is not the owner of business=%d", userID, businessID)
		return ErrAccessDenied
	}

	return nil
}

func (s *Service) getCollaborator(ctx context.Context, collaboratorID int64) (*domain.Collaborator, error) {
	collaborator, err := s.collaboratorRepo.GetByID(ctx, collaboratorID)
	if err != nil {
		if errors.Is(err, collaboratorRepo.ErrCollaboratorNotFound) {
			s.logger.Warn("collaborator id=%d not found", collaboratorID)
			return nil, ErrCollaboratorNotFound
		}
		s.logger.Error("failed to get collaborator id=%d: %v", collaboratorID, err)
		return nil, fmt.Errorf("%w: getCollaborator - repository error: %v", ErrInternal, err)
	}
	return collaborator, nil
}

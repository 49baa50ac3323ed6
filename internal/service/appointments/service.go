package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	collaboratorRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/collaborator"
	hoursRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/hours"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
)

// Service сервис для работы с записями
type Service struct {
	appointmentRepo  AppointmentRepository
	collaboratorRepo CollaboratorRepository
	businessRepo     BusinessRepository
	txManager        TransactionManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	collaboratorRepo CollaboratorRepository,
	businessRepo BusinessRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo:  appointmentRepo,
		collaboratorRepo: collaboratorRepo,
		businessRepo:     businessRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// GetByID получает запись по ID
// Видеть запись может клиент или владелец салона
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, userID)

	appointment, err := s.getAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	if appointment.ClientID != userID {
		if err := s.checkOwner(ctx, appointment.BusinessID, userID); err != nil {
			s.logger.Warn("GetByID: access denied for user=%d to appointment id=%d", userID, id)
			return nil, ErrAccessDenied
		}
	}

	return models.FromDomainAppointment(appointment), nil
}

// ListByCollaborator получает записи сотрудника на дату
// Доступно только владельцу салона
func (s *Service) ListByCollaborator(ctx context.Context, req *models.ListCollaboratorAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("ListByCollaborator: collaborator=%d, date=%s, user=%d",
		req.CollaboratorID, req.Date.Format(domain.DateFormat), req.UserID)

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	collaborator, err := s.collaboratorRepo.GetByID(ctx, req.CollaboratorID)
	if err != nil {
		if errors.Is(err, collaboratorRepo.ErrCollaboratorNotFound) {
			s.logger.Warn("ListByCollaborator: collaborator id=%d not found", req.CollaboratorID)
			return nil, ErrCollaboratorNotFound
		}
		s.logger.Error("ListByCollaborator: repository error for collaborator id=%d: %v", req.CollaboratorID, err)
		return nil, fmt.Errorf("%w: ListByCollaborator - repository error: %v", ErrInternal, err)
	}

	if err := s.checkOwner(ctx, collaborator.BusinessID, req.UserID); err != nil {
		return nil, err
	}

	appointments, err := s.appointmentRepo.GetByCollaboratorAndDate(ctx, req.CollaboratorID, req.Date, req.IncludeInactive)
	if err != nil {
		s.logger.Error("ListByCollaborator: repository error for collaborator id=%d: %v", req.CollaboratorID, err)
		return nil, fmt.Errorf("%w: ListByCollaborator - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByCollaborator: fetched %d appointments for collaborator=%d", len(appointments), req.CollaboratorID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись
// Клиент отменяет свою запись (cancelled_by_client), владелец салона любую (cancelled_by_business)
func (s *Service) Cancel(ctx context.Context, appointmentID int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d by user=%d", appointmentID, req.UserID)

	if req.CancellationReason != nil && len(*req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason is too long", ErrInvalidInput)
	}

	var cancelStatus domain.AppointmentStatus

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		appointment, err := s.getAppointment(txCtx, appointmentID)
		if err != nil {
			return err
		}

		if appointment.ClientID == req.UserID {
			cancelStatus = domain.StatusCancelledByClient
		} else {
			if err := s.checkOwner(txCtx, appointment.BusinessID, req.UserID); err != nil {
				s.logger.Warn("Cancel: access denied for user=%d to cancel appointment id=%d", req.UserID, appointmentID)
				return ErrAccessDenied
			}
			cancelStatus = domain.StatusCancelledByBusiness
		}

		if !appointment.CanBeCancelled() {
			s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", appointmentID, appointment.Status)
			return ErrCannotCancel
		}

		if err := s.appointmentRepo.Cancel(txCtx, appointmentID, cancelStatus, req.CancellationReason); err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d with status=%s", appointmentID, cancelStatus)
	return nil
}

// Вспомогательные методы

func (s *Service) getAppointment(ctx context.Context, id int64) (*domain.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: getAppointment - repository error: %v", ErrInternal, err)
	}
	return appointment, nil
}

// checkOwner проверяет, что пользователь владелец салона
func (s *Service) checkOwner(ctx context.Context, businessID, userID int64) error {
	ownerID, err := s.businessRepo.GetBusinessOwner(ctx, businessID)
	if err != nil {
		if errors.Is(err, hoursRepo.ErrBusinessNotFound) {
			s.logger.Warn("checkOwner: business id=%d not found", businessID)
			return ErrBusinessNotFound
		}
		s.logger.Error("checkOwner: failed to get owner of business id=%d: %v", businessID, err)
		return fmt.Errorf("%w: checkOwner - repository error: %v", ErrInternal, err)
	}

	if ownerID != userID {
		s.logger.Warn("checkOwner: user=%d is not the owner of business=%d", userID, businessID)
		return ErrAccessDenied
	}

	return nil
}

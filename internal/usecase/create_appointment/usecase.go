package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/availability"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	collaboratorRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/collaborator"
	"github.com/m04kA/SMC-SalonService/internal/integrations/clientservice"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// UseCase use case для создания записи к сотруднику
type UseCase struct {
	appointmentRepo  AppointmentRepository
	collaboratorRepo CollaboratorRepository
	clientService    ClientServiceClient
	txManager        TransactionManager
	config           Config
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	collaboratorRepo CollaboratorRepository,
	clientService ClientServiceClient,
	txManager TransactionManager,
	config Config,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		collaboratorRepo: collaboratorRepo,
		clientService:    clientService,
		txManager:        txManager,
		config:           config,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания записи
// Проверка доступности и вставка идут в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%d, collaborator=%d, date=%s, time=%s, duration=%d",
		req.ClientID, req.CollaboratorID, req.Date.Format(domain.DateFormat), req.Time, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = domain.DefaultAppointmentDurationMinutes
	}

	// 2. Проверяем горизонт записи
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now, uc.config.AdvanceBookingDays); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}
	if err := validateNotice(req.Date, req.Time, now, uc.config.MinNoticeMinutes); err != nil {
		uc.logger.Warn("CreateAppointment: notice validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем имя клиента (при деградации каталога запись создается без имени)
	var clientName *string
	client, err := uc.clientService.GetClientWithGracefulDegradation(ctx, req.ClientID)
	switch {
	case err == nil:
		clientName = ptr.Ptr(client.Name)
	case errors.Is(err, clientservice.ErrClientNotFound):
		uc.logger.Warn("CreateAppointment: client id=%d not found", req.ClientID)
		return nil, ErrClientNotFound
	case errors.Is(err, clientservice.ErrServiceDegraded):
		uc.logger.Warn("CreateAppointment: creating appointment without client name: %v", err)
	default:
		uc.logger.Error("CreateAppointment: failed to get client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	var result *domain.Appointment

	// 4. Повторная проверка и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Сотрудник и его расписание
		collaborator, err := uc.collaboratorRepo.GetByID(txCtx, req.CollaboratorID)
		if err != nil {
			if errors.Is(err, collaboratorRepo.ErrCollaboratorNotFound) {
				uc.logger.Warn("CreateAppointment: collaborator id=%d not found", req.CollaboratorID)
				return ErrCollaboratorNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get collaborator id=%d: %v", req.CollaboratorID, err)
			return fmt.Errorf("%w: failed to get collaborator: %v", ErrInternal, err)
		}

		week, err := uc.collaboratorRepo.GetSchedule(txCtx, req.CollaboratorID)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get schedule: %v", err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		// 4.2. Сотрудник работает в это время
		check, err := availability.CheckCollaborator(collaborator, week, req.Date, req.Time)
		if err != nil {
			uc.logger.Error("CreateAppointment: malformed schedule for collaborator id=%d: %v", req.CollaboratorID, err)
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
		if !check.Available {
			uc.logger.Warn("CreateAppointment: collaborator id=%d unavailable: %s", req.CollaboratorID, check.Reason)
			return &UnavailableError{Reason: check.Reason}
		}

		// 4.3. Активные записи на дату с блокировкой (FOR UPDATE)
		existing, err := uc.appointmentRepo.GetByCollaboratorAndDate(txCtx, req.CollaboratorID, req.Date, false)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		conflict, err := availability.HasConflict(req.Time, duration, existing)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to check conflicts: %v", err)
			return fmt.Errorf("%w: failed to check conflicts: %v", ErrInternal, err)
		}
		if conflict {
			uc.logger.Warn("CreateAppointment: slot %s %s is taken for collaborator id=%d",
				req.Date.Format(domain.DateFormat), req.Time, req.CollaboratorID)
			return ErrSlotNotAvailable
		}

		// 4.4. Создаем запись
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			BusinessID:      collaborator.BusinessID,
			CollaboratorID:  collaborator.ID,
			ClientID:        req.ClientID,
			ServiceName:     req.ServiceName,
			AppointmentDate: truncateDay(req.Date),
			AppointmentTime: req.Time,
			DurationMinutes: duration,
			Status:          domain.StatusScheduled,
			ClientName:      clientName,
			Notes:           req.Notes,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if isBusinessError(err) {
			return nil, err
		}
		uc.logger.Error("CreateAppointment: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		BusinessID:      result.BusinessID,
		CollaboratorID:  result.CollaboratorID,
		ClientID:        result.ClientID,
		ServiceName:     result.ServiceName,
		AppointmentDate: result.AppointmentDate,
		AppointmentTime: result.AppointmentTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ClientName:      result.ClientName,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// isBusinessError ошибки, которые возвращаются из транзакции без оборачивания
func isBusinessError(err error) bool {
	return errors.Is(err, ErrCollaboratorNotFound) ||
		errors.Is(err, ErrCollaboratorUnavailable) ||
		errors.Is(err, ErrSlotNotAvailable) ||
		errors.Is(err, ErrInternal)
}

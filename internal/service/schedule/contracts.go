package schedule

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// HoursRepository интерфейс репозитория часов работы
type HoursRepository interface {
	ReplaceWeek(ctx context.Context, businessID int64, week []domain.OperatingHoursDay) error
	GetBusinessOwner(ctx context.Context, businessID int64) (int64, error)
}

// CollaboratorRepository интерфейс репозитория сотрудников
type CollaboratorRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Collaborator, error)
	ReplaceSchedule(ctx context.Context, collaboratorID int64, week []domain.CollaboratorScheduleDay) error
}

// ScheduleCache чтение расписаний через кэш и сброс после записи
type ScheduleCache interface {
	GetByBusiness(ctx context.Context, businessID int64) ([]domain.OperatingHoursDay, error)
	GetSchedule(ctx context.Context, collaboratorID int64) ([]domain.CollaboratorScheduleDay, error)
	InvalidateBusiness(ctx context.Context, businessID int64)
	InvalidateCollaborator(ctx context.Context, collaboratorID int64)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

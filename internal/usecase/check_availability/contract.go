package check_availability

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// CollaboratorRepository интерфейс репозитория сотрудников
type CollaboratorRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Collaborator, error)
}

// ScheduleReader источник недельных расписаний
type ScheduleReader interface {
	GetSchedule(ctx context.Context, collaboratorID int64) ([]domain.CollaboratorScheduleDay, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

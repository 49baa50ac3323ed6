package get_collaborator_slots

import (
	"context"
	"time"

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

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByCollaboratorAndDate(ctx context.Context, collaboratorID int64, date time.Time, includeInactive bool) ([]*domain.Appointment, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

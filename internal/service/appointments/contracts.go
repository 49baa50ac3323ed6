package appointments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByCollaboratorAndDate(ctx context.Context, collaboratorID int64, date time.Time, includeInactive bool) ([]*domain.Appointment, error)
	Cancel(ctx context.Context, id int64, status domain.AppointmentStatus, reason *string) error
}

// CollaboratorRepository интерфейс репозитория сотрудников
type CollaboratorRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Collaborator, error)
}

// BusinessRepository источник владельцев салонов
type BusinessRepository interface {
	GetBusinessOwner(ctx context.Context, businessID int64) (int64, error)
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

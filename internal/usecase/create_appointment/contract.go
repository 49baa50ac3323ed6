package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/integrations/clientservice"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	GetByCollaboratorAndDate(ctx context.Context, collaboratorID int64, date time.Time, includeInactive bool) ([]*domain.Appointment, error)
}

// CollaboratorRepository интерфейс репозитория сотрудников
// Читается внутри транзакции, поэтому без кэша
type CollaboratorRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Collaborator, error)
	GetSchedule(ctx context.Context, collaboratorID int64) ([]domain.CollaboratorScheduleDay, error)
}

// ClientServiceClient интерфейс клиента для каталога клиентов
type ClientServiceClient interface {
	GetClientWithGracefulDegradation(ctx context.Context, clientID int64) (*clientservice.Client, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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

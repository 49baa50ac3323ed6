package schedule

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// HoursRepository источник часов работы салона
type HoursRepository interface {
	GetByBusiness(ctx context.Context, businessID int64) ([]domain.OperatingHoursDay, error)
}

// ScheduleRepository источник расписаний сотрудников
type ScheduleRepository interface {
	GetSchedule(ctx context.Context, collaboratorID int64) ([]domain.CollaboratorScheduleDay, error)
}

// MetricsRecorder учитывает попадания в кэш
type MetricsRecorder interface {
	ObserveCache(kind string, hit bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

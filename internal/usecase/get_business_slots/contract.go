package get_business_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// HoursReader источник часов работы салона
type HoursReader interface {
	GetByBusiness(ctx context.Context, businessID int64) ([]domain.OperatingHoursDay, error)
}

// BusinessRepository проверка существования салона
type BusinessRepository interface {
	GetBusinessOwner(ctx context.Context, businessID int64) (int64, error)
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

package get_business_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Config ограничения горизонта записи
type Config struct {
	AdvanceBookingDays int // 0 - без ограничения
	MinNoticeMinutes   int // минимальный запас до начала слота на сегодня
}

// Request модель запроса слотов салона
type Request struct {
	BusinessID             int64
	Date                   time.Time
	ServiceDurationMinutes int // 0 - длительность по умолчанию
}

// Response модель ответа со слотами салона
type Response struct {
	BusinessID             int64
	Date                   time.Time
	DayOfWeek              domain.Weekday
	IsOpen                 bool
	ServiceDurationMinutes int
	Slots                  []types.TimeString
}

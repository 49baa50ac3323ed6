package get_collaborator_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Config ограничения горизонта записи
type Config struct {
	AdvanceBookingDays int
	MinNoticeMinutes   int
}

// Request модель запроса свободного времени сотрудника
type Request struct {
	CollaboratorID         int64
	Date                   time.Time
	SlotIntervalMinutes    int // 0 - шаг по умолчанию
	ServiceDurationMinutes int // 0 - длительность по умолчанию
}

// Response модель ответа со свободным временем сотрудника
type Response struct {
	CollaboratorID         int64
	Date                   time.Time
	SlotIntervalMinutes    int
	ServiceDurationMinutes int
	Slots                  []types.TimeString
}

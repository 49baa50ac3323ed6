package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Config ограничения горизонта записи
type Config struct {
	AdvanceBookingDays int
	MinNoticeMinutes   int
}

// Request модель запроса на создание записи
type Request struct {
	ClientID        int64            // ID клиента (из X-User-ID)
	CollaboratorID  int64            // ID сотрудника
	ServiceName     string           // Название услуги
	Date            time.Time        // Дата записи (без времени)
	Time            types.TimeString // Время начала, HH:MM
	DurationMinutes int              // 0 - длительность по умолчанию
	Notes           *string
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64
	BusinessID      int64
	CollaboratorID  int64
	ClientID        int64
	ServiceName     string
	AppointmentDate time.Time
	AppointmentTime types.TimeString
	DurationMinutes int
	Status          string

	// Денормализованные данные
	ClientName *string
	Notes      *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

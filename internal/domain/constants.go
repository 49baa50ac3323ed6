package domain

// Slot computation defaults
const (
	SlotGranularityMinutes                 = 30 // шаг слотов по часам работы салона
	DefaultBusinessServiceDurationMinutes  = 30
	DefaultCollaboratorSlotIntervalMinutes = 30
	DefaultCollaboratorServiceMinutes      = 60
	DefaultAppointmentDurationMinutes      = 60
)

// Business validation constants
const (
	MaxServiceDurationMinutes   = 480 // 8 hours
	MaxSlotIntervalMinutes      = 240
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxServiceNameLength        = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses статусы, не занимающие время сотрудника
// Используется для фильтрации при поиске пересечений
var InactiveStatuses = []AppointmentStatus{
	StatusCancelledByClient,
	StatusCancelledByBusiness,
	StatusNoShow,
}

// ActiveStatuses статусы, занимающие время сотрудника
var ActiveStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusCompleted,
}

package availability

// Причины отказа CheckCollaborator
const (
	ReasonCollaboratorInactive = "collaborator inactive"
	ReasonDayOff               = "collaborator does not work this day"
	ReasonHoursNotConfigured   = "hours not configured for this day"
)

// Сообщения ValidateSchedule
const (
	MsgNoWorkingDays = "configure at least one working day"
)

// Availability результат проверки времени для сотрудника
// Reason заполнен только при Available == false
type Availability struct {
	Available bool
	Reason    string
}

// ScheduleValidation результат проверки недельного расписания перед сохранением
type ScheduleValidation struct {
	Valid bool
	Error string
}

func available() Availability {
	return Availability{Available: true}
}

func unavailable(reason string) Availability {
	return Availability{Available: false, Reason: reason}
}

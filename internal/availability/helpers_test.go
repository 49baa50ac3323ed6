package availability

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// monday 2024-01-15
var monday = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

func ts(s string) *types.TimeString {
	t := types.TimeString(s)
	return &t
}

func openDay(start, end string, breaks ...domain.Break) domain.OperatingHoursDay {
	return domain.OperatingHoursDay{
		BusinessID: 1,
		DayOfWeek:  domain.Monday,
		IsOpen:     true,
		StartTime:  ts(start),
		EndTime:    ts(end),
		Breaks:     breaks,
	}
}

func workDay(day domain.Weekday, start, end string) domain.CollaboratorScheduleDay {
	return domain.CollaboratorScheduleDay{
		CollaboratorID: 7,
		DayOfWeek:      day,
		Enabled:        true,
		StartTime:      ts(start),
		EndTime:        ts(end),
	}
}

func dayOff(day domain.Weekday) domain.CollaboratorScheduleDay {
	return domain.CollaboratorScheduleDay{CollaboratorID: 7, DayOfWeek: day}
}

func appointmentAt(start string, duration int, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              1,
		CollaboratorID:  7,
		AppointmentDate: monday,
		AppointmentTime: types.TimeString(start),
		DurationMinutes: duration,
		Status:          status,
	}
}

func strs(slots []types.TimeString) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}

package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Collaborator сотрудник салона
type Collaborator struct {
	ID         int64
	BusinessID int64
	Name       string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CollaboratorScheduleDay рабочее окно сотрудника в день недели
// Не обязано лежать внутри часов работы салона
type CollaboratorScheduleDay struct {
	CollaboratorID int64
	DayOfWeek      Weekday
	Enabled        bool
	StartTime      *types.TimeString // nil, если день выключен
	EndTime        *types.TimeString // nil, если день выключен
}

// HasHours возвращает true, если оба времени указаны
func (d *CollaboratorScheduleDay) HasHours() bool {
	return d.StartTime != nil && d.EndTime != nil
}

// FindScheduleDay возвращает запись расписания на день недели
func FindScheduleDay(week []CollaboratorScheduleDay, day Weekday) (CollaboratorScheduleDay, bool) {
	for _, d := range week {
		if d.DayOfWeek == day {
			return d, true
		}
	}
	return CollaboratorScheduleDay{}, false
}

package domain

import "github.com/m04kA/SMC-SalonService/pkg/types"

// Break перерыв внутри рабочего дня
type Break struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// OperatingHoursDay часы работы салона в конкретный день недели
// Если IsOpen == false, время и перерывы не учитываются
type OperatingHoursDay struct {
	BusinessID int64
	DayOfWeek  Weekday
	IsOpen     bool
	StartTime  *types.TimeString
	EndTime    *types.TimeString
	Breaks     []Break
}

// HasHours возвращает true, если день открыт и оба времени указаны
func (d *OperatingHoursDay) HasHours() bool {
	return d.IsOpen && d.StartTime != nil && d.EndTime != nil
}

// FindOperatingHours возвращает часы работы на день недели
func FindOperatingHours(week []OperatingHoursDay, day Weekday) (OperatingHoursDay, bool) {
	for _, d := range week {
		if d.DayOfWeek == day {
			return d, true
		}
	}
	return OperatingHoursDay{}, false
}

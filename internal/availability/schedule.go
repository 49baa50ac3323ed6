package availability

import (
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ValidateSchedule проверяет недельное расписание сотрудника перед сохранением
//
// Правила проверяются по очереди, каждое по всем дням:
//  1. хотя бы один день включён;
//  2. у каждого включённого дня заданы оба времени;
//  3. у каждого включённого дня начало раньше конца.
func ValidateSchedule(week []domain.CollaboratorScheduleDay) ScheduleValidation {
	enabled := make([]domain.CollaboratorScheduleDay, 0, len(week))
	for _, d := range week {
		if d.Enabled {
			enabled = append(enabled, d)
		}
	}

	if len(enabled) == 0 {
		return ScheduleValidation{Valid: false, Error: MsgNoWorkingDays}
	}

	for _, d := range enabled {
		if !d.HasHours() || d.StartTime.IsZero() || d.EndTime.IsZero() {
			return ScheduleValidation{Valid: false, Error: fmt.Sprintf("%s: start and end time are required", d.DayOfWeek)}
		}
	}

	for _, d := range enabled {
		start, errStart := d.StartTime.Minutes()
		end, errEnd := d.EndTime.Minutes()
		if errStart != nil || errEnd != nil {
			return ScheduleValidation{Valid: false, Error: fmt.Sprintf("%s: invalid time format, expected HH:MM", d.DayOfWeek)}
		}
		if start >= end {
			return ScheduleValidation{Valid: false, Error: fmt.Sprintf("%s: start time must be before end time", d.DayOfWeek)}
		}
	}

	return ScheduleValidation{Valid: true}
}

// ValidateOperatingHours проверяет часы работы салона перед сохранением
// Для открытого дня: начало раньше конца, перерывы внутри дня, идут по порядку и не пересекаются
func ValidateOperatingHours(week []domain.OperatingHoursDay) error {
	for _, d := range week {
		if !d.IsOpen {
			continue
		}

		if d.StartTime == nil || d.EndTime == nil {
			return fmt.Errorf("%w: %s: start and end time are required", ErrInvalidOperatingHours, d.DayOfWeek)
		}

		open, err := d.StartTime.Minutes()
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidOperatingHours, d.DayOfWeek, err)
		}
		closing, err := d.EndTime.Minutes()
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidOperatingHours, d.DayOfWeek, err)
		}
		if open >= closing {
			return fmt.Errorf("%w: %s: start time must be before end time", ErrInvalidOperatingHours, d.DayOfWeek)
		}

		prevEnd := open
		for i, b := range d.Breaks {
			start, err := b.Start.Minutes()
			if err != nil {
				return fmt.Errorf("%w: %s: break #%d: %v", ErrInvalidOperatingHours, d.DayOfWeek, i+1, err)
			}
			end, err := b.End.Minutes()
			if err != nil {
				return fmt.Errorf("%w: %s: break #%d: %v", ErrInvalidOperatingHours, d.DayOfWeek, i+1, err)
			}
			if start >= end {
				return fmt.Errorf("%w: %s: break #%d must start before it ends", ErrInvalidOperatingHours, d.DayOfWeek, i+1)
			}
			if start < open || end > closing {
				return fmt.Errorf("%w: %s: break #%d must be within %s-%s",
					ErrInvalidOperatingHours, d.DayOfWeek, i+1, *d.StartTime, *d.EndTime)
			}
			if start < prevEnd {
				return fmt.Errorf("%w: %s: break #%d overlaps the previous break", ErrInvalidOperatingHours, d.DayOfWeek, i+1)
			}
			prevEnd = end
		}
	}

	return nil
}

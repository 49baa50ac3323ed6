package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// CheckCollaborator проверяет, может ли сотрудник принять запись на date в candidate
//
// Проверки идут по порядку, первая неудачная определяет причину:
// сотрудник неактивен, день не рабочий, часы не заданы, время вне смены.
// Конец смены включается: запись ровно на время окончания допустима.
// Ошибка возвращается только для некорректных строк времени.
func CheckCollaborator(
	collaborator *domain.Collaborator,
	week []domain.CollaboratorScheduleDay,
	date time.Time,
	candidate types.TimeString,
) (Availability, error) {
	if collaborator == nil {
		return Availability{}, ErrMissingCollaborator
	}

	if !collaborator.Active {
		return unavailable(ReasonCollaboratorInactive), nil
	}

	shift, reason, err := resolveShift(week, date)
	if err != nil {
		return Availability{}, err
	}
	if reason != "" {
		return unavailable(reason), nil
	}

	candidateMinutes, err := candidate.Minutes()
	if err != nil {
		return Availability{}, err
	}

	if candidateMinutes < shift.start || candidateMinutes > shift.end {
		return unavailable(fmt.Sprintf("outside working hours: collaborator works from %s to %s on %s",
			shift.startTime, shift.endTime, shift.day)), nil
	}

	return available(), nil
}

// CollaboratorSlots генерирует свободные времена начала для сотрудника на date
//
// Кандидаты идут от начала смены до её конца включительно с шагом slotInterval.
// Кандидат отбрасывается, если [кандидат, кандидат+serviceDuration) пересекает
// активную запись. Если день не рабочий, возвращается пустой список.
// slotInterval <= 0 и serviceDuration <= 0 заменяются значениями по умолчанию.
func CollaboratorSlots(
	week []domain.CollaboratorScheduleDay,
	date time.Time,
	slotIntervalMinutes int,
	existing []*domain.Appointment,
	serviceDurationMinutes int,
) ([]types.TimeString, error) {
	if slotIntervalMinutes <= 0 {
		slotIntervalMinutes = domain.DefaultCollaboratorSlotIntervalMinutes
	}
	if serviceDurationMinutes <= 0 {
		serviceDurationMinutes = domain.DefaultCollaboratorServiceMinutes
	}

	shift, reason, err := resolveShift(week, date)
	if err != nil {
		return nil, err
	}
	if reason != "" {
		return []types.TimeString{}, nil
	}

	busy, err := busyWindows(existing)
	if err != nil {
		return nil, err
	}

	slots := make([]types.TimeString, 0)
	for candidate := shift.start; candidate <= shift.end; candidate += slotIntervalMinutes {
		if conflicts(candidate, candidate+serviceDurationMinutes, busy) {
			continue
		}

		slot, err := types.FormatMinutes(candidate)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

type shift struct {
	day       domain.Weekday
	startTime types.TimeString
	endTime   types.TimeString
	start     int
	end       int
}

// resolveShift находит смену сотрудника на дату
// Непустой reason означает, что сотрудник в этот день не работает
func resolveShift(week []domain.CollaboratorScheduleDay, date time.Time) (shift, string, error) {
	weekday := domain.WeekdayOf(date)

	day, ok := domain.FindScheduleDay(week, weekday)
	if !ok || !day.Enabled {
		return shift{}, ReasonDayOff, nil
	}

	if !day.HasHours() {
		return shift{}, ReasonHoursNotConfigured, nil
	}

	start, err := day.StartTime.Minutes()
	if err != nil {
		return shift{}, "", fmt.Errorf("%s start time: %w", weekday, err)
	}
	end, err := day.EndTime.Minutes()
	if err != nil {
		return shift{}, "", fmt.Errorf("%s end time: %w", weekday, err)
	}

	return shift{
		day:       weekday,
		startTime: *day.StartTime,
		endTime:   *day.EndTime,
		start:     start,
		end:       end,
	}, "", nil
}

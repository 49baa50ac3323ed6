package models

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

var (
	// ErrDuplicateDay возвращается, если день недели указан дважды
	ErrDuplicateDay = errors.New("duplicate day of week")
)

// BreakDTO перерыв
type BreakDTO struct {
	Start string `json:"start"` // "12:00"
	End   string `json:"end"`   // "13:00"
}

// OperatingHoursDayDTO часы работы салона в день недели
type OperatingHoursDayDTO struct {
	DayOfWeek string     `json:"dayOfWeek"` // "monday"
	IsOpen    bool       `json:"isOpen"`
	StartTime *string    `json:"startTime,omitempty"`
	EndTime   *string    `json:"endTime,omitempty"`
	Breaks    []BreakDTO `json:"breaks"`
}

// ScheduleDayDTO рабочее окно сотрудника в день недели
type ScheduleDayDTO struct {
	DayOfWeek string  `json:"dayOfWeek"`
	Enabled   bool    `json:"enabled"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
}

// Request модели

// UpdateOperatingHoursRequest запрос на замену часов работы салона
type UpdateOperatingHoursRequest struct {
	UserID int64                  `json:"-"`
	Days   []OperatingHoursDayDTO `json:"days"`
}

// UpdateScheduleRequest запрос на замену расписания сотрудника
type UpdateScheduleRequest struct {
	UserID int64            `json:"-"`
	Days   []ScheduleDayDTO `json:"days"`
}

// Response модели

// OperatingHoursResponse часы работы салона на все семь дней
type OperatingHoursResponse struct {
	BusinessID int64                  `json:"businessId"`
	Days       []OperatingHoursDayDTO `json:"days"`
}

// ScheduleResponse расписание сотрудника на все семь дней
type ScheduleResponse struct {
	CollaboratorID int64            `json:"collaboratorId"`
	Days           []ScheduleDayDTO `json:"days"`
}

// Методы конвертации

// ToDomain конвертирует запрос в часы работы салона
func (r *UpdateOperatingHoursRequest) ToDomain(businessID int64) ([]domain.OperatingHoursDay, error) {
	seen := make(map[domain.Weekday]bool, len(r.Days))
	week := make([]domain.OperatingHoursDay, 0, len(r.Days))

	for _, d := range r.Days {
		weekday, err := parseDay(d.DayOfWeek, seen)
		if err != nil {
			return nil, err
		}

		day := domain.OperatingHoursDay{
			BusinessID: businessID,
			DayOfWeek:  weekday,
			IsOpen:     d.IsOpen,
			Breaks:     make([]domain.Break, 0, len(d.Breaks)),
		}
		if day.StartTime, err = parseOptionalTime(d.StartTime); err != nil {
			return nil, fmt.Errorf("%s: %w", weekday, err)
		}
		if day.EndTime, err = parseOptionalTime(d.EndTime); err != nil {
			return nil, fmt.Errorf("%s: %w", weekday, err)
		}

		for _, b := range d.Breaks {
			start, err := types.NewTimeStringFromString(b.Start)
			if err != nil {
				return nil, fmt.Errorf("%s: break: %w", weekday, err)
			}
			end, err := types.NewTimeStringFromString(b.End)
			if err != nil {
				return nil, fmt.Errorf("%s: break: %w", weekday, err)
			}
			day.Breaks = append(day.Breaks, domain.Break{Start: start, End: end})
		}

		week = append(week, day)
	}

	return week, nil
}

// ToDomain конвертирует запрос в расписание сотрудника
// У выключенных дней время отбрасывается, у включённых сохраняется как есть до проверки расписания
func (r *UpdateScheduleRequest) ToDomain(collaboratorID int64) ([]domain.CollaboratorScheduleDay, error) {
	seen := make(map[domain.Weekday]bool, len(r.Days))
	week := make([]domain.CollaboratorScheduleDay, 0, len(r.Days))

	for _, d := range r.Days {
		weekday, err := parseDay(d.DayOfWeek, seen)
		if err != nil {
			return nil, err
		}

		day := domain.CollaboratorScheduleDay{
			CollaboratorID: collaboratorID,
			DayOfWeek:      weekday,
			Enabled:        d.Enabled,
		}
		if d.Enabled {
			day.StartTime = rawTime(d.StartTime)
			day.EndTime = rawTime(d.EndTime)
		}

		week = append(week, day)
	}

	return week, nil
}

// FromDomainOperatingHours конвертирует часы работы в DTO, недостающие дни считаются закрытыми
func FromDomainOperatingHours(businessID int64, week []domain.OperatingHoursDay) *OperatingHoursResponse {
	resp := &OperatingHoursResponse{
		BusinessID: businessID,
		Days:       make([]OperatingHoursDayDTO, 0, len(domain.AllWeekdays)),
	}

	for _, weekday := range domain.AllWeekdays {
		dto := OperatingHoursDayDTO{DayOfWeek: weekday.String(), Breaks: []BreakDTO{}}

		if day, ok := domain.FindOperatingHours(week, weekday); ok {
			dto.IsOpen = day.IsOpen
			dto.StartTime = timeToString(day.StartTime)
			dto.EndTime = timeToString(day.EndTime)
			for _, b := range day.Breaks {
				dto.Breaks = append(dto.Breaks, BreakDTO{Start: b.Start.String(), End: b.End.String()})
			}
		}

		resp.Days = append(resp.Days, dto)
	}

	return resp
}

// FromDomainSchedule конвертирует расписание в DTO, недостающие дни считаются выходными
func FromDomainSchedule(collaboratorID int64, week []domain.CollaboratorScheduleDay) *ScheduleResponse {
	resp := &ScheduleResponse{
		CollaboratorID: collaboratorID,
		Days:           make([]ScheduleDayDTO, 0, len(domain.AllWeekdays)),
	}

	for _, weekday := range domain.AllWeekdays {
		dto := ScheduleDayDTO{DayOfWeek: weekday.String()}

		if day, ok := domain.FindScheduleDay(week, weekday); ok {
			dto.Enabled = day.Enabled
			dto.StartTime = timeToString(day.StartTime)
			dto.EndTime = timeToString(day.EndTime)
		}

		resp.Days = append(resp.Days, dto)
	}

	return resp
}

func parseDay(name string, seen map[domain.Weekday]bool) (domain.Weekday, error) {
	weekday, err := domain.ParseWeekday(name)
	if err != nil {
		return 0, err
	}
	if seen[weekday] {
		return 0, fmt.Errorf("%w: %s", ErrDuplicateDay, weekday)
	}
	seen[weekday] = true
	return weekday, nil
}

func parseOptionalTime(s *string) (*types.TimeString, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := types.NewTimeStringFromString(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// rawTime нормализует корректное время и оставляет некорректное без изменений
func rawTime(s *string) *types.TimeString {
	if s == nil {
		return nil
	}
	if t, err := types.NewTimeStringFromString(*s); err == nil {
		return &t
	}
	t := types.TimeString(*s)
	return &t
}

func timeToString(t *types.TimeString) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}

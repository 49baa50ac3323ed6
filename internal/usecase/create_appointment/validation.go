package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.CollaboratorID <= 0 {
		return fmt.Errorf("%w: collaboratorID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ServiceName) == "" {
		return fmt.Errorf("%w: serviceName is required", ErrInvalidInput)
	}

	if len(req.ServiceName) > domain.MaxServiceNameLength {
		return fmt.Errorf("%w: serviceName must be at most %d characters", ErrInvalidInput, domain.MaxServiceNameLength)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if req.DurationMinutes < 0 || req.DurationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: duration must be between 1 and %d minutes", ErrInvalidInput, domain.MaxServiceDurationMinutes)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом и не дальше горизонта записи
func validateDate(date, now time.Time, advanceBookingDays int) error {
	requested := truncateDay(date)
	today := truncateDay(now)

	if requested.Before(today) {
		return ErrInvalidDate
	}

	if advanceBookingDays > 0 {
		if maxDate := today.AddDate(0, 0, advanceBookingDays); requested.After(maxDate) {
			return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
		}
	}

	return nil
}

// validateNotice проверяет, что запись на сегодня не раньше now + minNotice
func validateNotice(date time.Time, start types.TimeString, now time.Time, minNoticeMinutes int) error {
	if !truncateDay(date).Equal(truncateDay(now)) {
		return nil
	}

	startMinutes, err := start.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if startMinutes < now.Hour()*60+now.Minute()+minNoticeMinutes {
		return fmt.Errorf("%w: booking requires at least %d minutes notice", ErrTooLateToBook, minNoticeMinutes)
	}

	return nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

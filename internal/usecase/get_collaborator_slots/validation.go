package get_collaborator_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CollaboratorID <= 0 {
		return fmt.Errorf("%w: collaboratorID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.SlotIntervalMinutes < 0 || req.SlotIntervalMinutes > domain.MaxSlotIntervalMinutes {
		return fmt.Errorf("%w: interval must be between 1 and %d minutes", ErrInvalidInput, domain.MaxSlotIntervalMinutes)
	}

	if req.ServiceDurationMinutes < 0 || req.ServiceDurationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: duration must be between 1 and %d minutes", ErrInvalidInput, domain.MaxServiceDurationMinutes)
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

// filterNotice оставляет на сегодня только слоты не раньше now + minNotice
func filterNotice(slots []types.TimeString, date, now time.Time, minNoticeMinutes int) []types.TimeString {
	if !truncateDay(date).Equal(truncateDay(now)) {
		return slots
	}

	threshold := now.Hour()*60 + now.Minute() + minNoticeMinutes

	kept := make([]types.TimeString, 0, len(slots))
	for _, s := range slots {
		if m, err := s.Minutes(); err == nil && m >= threshold {
			kept = append(kept, s)
		}
	}
	return kept
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

package get_business_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.ServiceDurationMinutes < 0 || req.ServiceDurationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: duration must be between 1 and %d minutes", ErrInvalidInput, domain.MaxServiceDurationMinutes)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом и не дальше горизонта записи
func validateDate(date, now time.Time, advanceBookingDays int) error {
	day := dateOnly(date)
	today := dateOnly(now)

	if day.Before(today) {
		return ErrInvalidDate
	}

	if advanceBookingDays > 0 && day.After(today.AddDate(0, 0, advanceBookingDays)) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

// dropTooSoon убирает слоты сегодняшнего дня, начинающиеся раньше now + minNotice
func dropTooSoon(slots []types.TimeString, date, now time.Time, minNoticeMinutes int) []types.TimeString {
	if !dateOnly(date).Equal(dateOnly(now)) {
		return slots
	}

	earliest := now.Hour()*60 + now.Minute() + minNoticeMinutes

	result := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		minutes, err := slot.Minutes()
		if err != nil || minutes < earliest {
			continue
		}
		result = append(result, slot)
	}
	return result
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

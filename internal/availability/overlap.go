package availability

import (
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Overlaps проверяет пересечение полуоткрытых интервалов [aStart, aEnd) и [bStart, bEnd)
// Интервалы, которые только касаются друг друга, не пересекаются
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// HasConflict проверяет, пересекается ли запись [start, start+duration) с активными записями
func HasConflict(start types.TimeString, durationMinutes int, existing []*domain.Appointment) (bool, error) {
	startMinutes, err := start.Minutes()
	if err != nil {
		return false, err
	}

	windows, err := busyWindows(existing)
	if err != nil {
		return false, err
	}

	return conflicts(startMinutes, startMinutes+durationMinutes, windows), nil
}

type window struct {
	start int
	end   int
}

// busyWindows переводит активные записи в интервалы в минутах
func busyWindows(existing []*domain.Appointment) ([]window, error) {
	windows := make([]window, 0, len(existing))
	for _, a := range existing {
		if a == nil || !a.IsActive() {
			continue
		}
		start, err := a.AppointmentTime.Minutes()
		if err != nil {
			return nil, fmt.Errorf("appointment id=%d: %w", a.ID, err)
		}
		windows = append(windows, window{start: start, end: start + a.EffectiveDuration()})
	}
	return windows, nil
}

func conflicts(start, end int, windows []window) bool {
	for _, w := range windows {
		if Overlaps(start, end, w.start, w.end) {
			return true
		}
	}
	return false
}

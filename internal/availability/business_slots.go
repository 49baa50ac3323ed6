package availability

import (
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// BusinessSlots генерирует времена начала по часам работы салона
//
// Кандидаты идут с шагом domain.SlotGranularityMinutes от открытия (включительно)
// до закрытия (не включительно) независимо от длительности услуги. Слот
// отбрасывается, если заканчивается позже закрытия или пересекает перерыв.
// serviceDurationMinutes <= 0 означает длительность по умолчанию.
func BusinessSlots(day domain.OperatingHoursDay, serviceDurationMinutes int) ([]types.TimeString, error) {
	if !day.HasHours() {
		return []types.TimeString{}, nil
	}

	if serviceDurationMinutes <= 0 {
		serviceDurationMinutes = domain.DefaultBusinessServiceDurationMinutes
	}

	openMinutes, err := day.StartTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("opening time: %w", err)
	}
	closeMinutes, err := day.EndTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("closing time: %w", err)
	}

	breaks := make([]window, 0, len(day.Breaks))
	for i, b := range day.Breaks {
		start, err := b.Start.Minutes()
		if err != nil {
			return nil, fmt.Errorf("break #%d start: %w", i+1, err)
		}
		end, err := b.End.Minutes()
		if err != nil {
			return nil, fmt.Errorf("break #%d end: %w", i+1, err)
		}
		breaks = append(breaks, window{start: start, end: end})
	}

	slots := make([]types.TimeString, 0)
	for candidate := openMinutes; candidate < closeMinutes; candidate += domain.SlotGranularityMinutes {
		slotEnd := candidate + serviceDurationMinutes
		if slotEnd > closeMinutes {
			continue
		}
		if conflicts(candidate, slotEnd, breaks) {
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

package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

func TestBusinessSlots_FullDay(t *testing.T) {
	slots, err := BusinessSlots(openDay("08:00", "18:00"), 30)
	require.NoError(t, err)

	require.Len(t, slots, 20)
	assert.Equal(t, types.TimeString("08:00"), slots[0])
	assert.Equal(t, types.TimeString("17:30"), slots[len(slots)-1])
}

func TestBusinessSlots_DefaultDuration(t *testing.T) {
	withDefault, err := BusinessSlots(openDay("08:00", "18:00"), 0)
	require.NoError(t, err)

	explicit, err := BusinessSlots(openDay("08:00", "18:00"), domain.DefaultBusinessServiceDurationMinutes)
	require.NoError(t, err)

	assert.Equal(t, explicit, withDefault)
}

func TestBusinessSlots_ExclusiveClosing(t *testing.T) {
	slots, err := BusinessSlots(openDay("08:00", "18:00"), 60)
	require.NoError(t, err)

	got := strs(slots)
	assert.Contains(t, got, "17:00")
	assert.NotContains(t, got, "17:30")
	assert.NotContains(t, got, "18:00")
}

func TestBusinessSlots_Break(t *testing.T) {
	day := openDay("08:00", "18:00", domain.Break{Start: "12:00", End: "13:00"})

	slots, err := BusinessSlots(day, 60)
	require.NoError(t, err)

	got := strs(slots)
	assert.Contains(t, got, "11:00")
	assert.Contains(t, got, "13:00")
	assert.NotContains(t, got, "11:30")
	assert.NotContains(t, got, "12:00")
	assert.NotContains(t, got, "12:30")
}

func TestBusinessSlots_DurationLongerThanDay(t *testing.T) {
	slots, err := BusinessSlots(openDay("09:00", "10:00"), 90)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestBusinessSlots_ClosedOrIncomplete(t *testing.T) {
	closed := openDay("08:00", "18:00")
	closed.IsOpen = false

	noEnd := openDay("08:00", "18:00")
	noEnd.EndTime = nil

	for name, day := range map[string]domain.OperatingHoursDay{"closed": closed, "no end time": noEnd} {
		t.Run(name, func(t *testing.T) {
			slots, err := BusinessSlots(day, 30)
			require.NoError(t, err)
			assert.NotNil(t, slots)
			assert.Empty(t, slots)
		})
	}
}

func TestBusinessSlots_InvalidTime(t *testing.T) {
	_, err := BusinessSlots(openDay("8am", "18:00"), 30)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = BusinessSlots(openDay("08:00", "18:00", domain.Break{Start: "12:00", End: "12:75"}), 30)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestBusinessSlots_Properties(t *testing.T) {
	day := openDay("09:00", "19:00",
		domain.Break{Start: "11:15", End: "11:45"},
		domain.Break{Start: "14:00", End: "15:00"},
	)

	for _, duration := range []int{15, 30, 45, 60, 90, 120} {
		slots, err := BusinessSlots(day, duration)
		require.NoError(t, err)

		prev := -1
		for _, s := range slots {
			start, err := s.Minutes()
			require.NoError(t, err)

			assert.Greater(t, start, prev, "ascending")
			assert.Zero(t, (start-9*60)%domain.SlotGranularityMinutes, "on the grid")
			assert.LessOrEqual(t, start+duration, 19*60, "ends before closing")
			assert.False(t, Overlaps(start, start+duration, 11*60+15, 11*60+45), "%s/%d hits first break", s, duration)
			assert.False(t, Overlaps(start, start+duration, 14*60, 15*60), "%s/%d hits second break", s, duration)
			prev = start
		}
	}
}

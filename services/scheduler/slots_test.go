package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trimbook/models"
)

func TestPartitionSlotsSplitsAtNoon(t *testing.T) {
	var slots []models.AvailabilitySlot
	for hour := 0; hour < 24; hour++ {
		slots = append(slots, models.AvailabilitySlot{Hour: hour, Available: hour%2 == 0})
	}

	morning, afternoon := partitionSlots(slots)

	assert.Len(t, morning, 12)
	assert.Len(t, afternoon, 12)

	// Every input slot lands in exactly one section, in order.
	seen := make(map[int]int)
	for _, s := range morning {
		assert.Less(t, s.Hour, 12)
		seen[s.Hour]++
	}
	for _, s := range afternoon {
		assert.GreaterOrEqual(t, s.Hour, 12)
		seen[s.Hour]++
	}
	for hour := 0; hour < 24; hour++ {
		assert.Equal(t, 1, seen[hour], "hour %d must appear exactly once", hour)
	}
}

func TestPartitionSlotsPreservesAvailability(t *testing.T) {
	morning, afternoon := partitionSlots([]models.AvailabilitySlot{
		{Hour: 8, Available: true},
		{Hour: 11, Available: false},
		{Hour: 12, Available: true},
		{Hour: 17, Available: false},
	})

	assert.Equal(t, []models.HourSlot{
		{Hour: 8, Available: true, HourFormatted: "08:00"},
		{Hour: 11, Available: false, HourFormatted: "11:00"},
	}, morning)
	assert.Equal(t, []models.HourSlot{
		{Hour: 12, Available: true, HourFormatted: "12:00"},
		{Hour: 17, Available: false, HourFormatted: "17:00"},
	}, afternoon)
}

func TestPartitionSlotsEmpty(t *testing.T) {
	morning, afternoon := partitionSlots(nil)
	assert.Empty(t, morning)
	assert.Empty(t, afternoon)
}

func TestFormatHourZeroPads(t *testing.T) {
	assert.Equal(t, "08:00", models.FormatHour(8))
	assert.Equal(t, "14:00", models.FormatHour(14))
	assert.Equal(t, "00:00", models.FormatHour(0))
}

package scheduler

import "trimbook/models"

// noon splits the schedule into its two display sections.
const noon = 12

// partitionSlots splits an availability list into morning (hour < 12) and
// afternoon (hour >= 12) sections, attaching the "HH:00" display label to
// each slot. Every input slot lands in exactly one section.
func partitionSlots(slots []models.AvailabilitySlot) (morning, afternoon []models.HourSlot) {
	for _, slot := range slots {
		hs := models.HourSlot{
			Hour:          slot.Hour,
			Available:     slot.Available,
			HourFormatted: models.FormatHour(slot.Hour),
		}
		if slot.Hour < noon {
			morning = append(morning, hs)
		} else {
			afternoon = append(afternoon, hs)
		}
	}
	return morning, afternoon
}

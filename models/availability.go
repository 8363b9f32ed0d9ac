package models

import "fmt"

// AvailabilitySlot is one bookable hour of one provider day. Fetched fresh
// whenever the selected provider or date changes; never persisted client-side.
type AvailabilitySlot struct {
	Hour      int  `json:"hour"`
	Available bool `json:"available"`
}

// HourSlot is an AvailabilitySlot enriched with its display label.
type HourSlot struct {
	Hour          int    `json:"hour"`
	Available     bool   `json:"available"`
	HourFormatted string `json:"hourFormatted"`
}

// FormatHour renders an hour of day as a zero-padded "HH:00" label.
func FormatHour(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

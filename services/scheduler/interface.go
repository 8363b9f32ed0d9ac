package scheduler

import (
	"context"
	"time"

	"trimbook/models"
)

// BookingAPI is the backend surface the scheduler consumes.
type BookingAPI interface {
	Providers(ctx context.Context) ([]models.Provider, error)
	DayAvailability(ctx context.Context, providerID string, year, month, day int) ([]models.AvailabilitySlot, error)
	CreateAppointment(ctx context.Context, providerID string, date time.Time) (*models.Appointment, error)
}

// Navigator is the navigation stack surface the scheduler drives.
type Navigator interface {
	Back()
	AppointmentCreated(date time.Time, provider models.Provider)
}

// DatePickerConfig models the platform differences of the native date picker.
// Some platforms dismiss the picker as soon as a value is chosen; others keep
// it open until the user toggles it away.
type DatePickerConfig struct {
	AutoDismissOnSelect bool
}

// File: trimbook/services/scheduler/scheduler.go
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"trimbook/models"
)

// Scheduler is the appointment-booking view-model: it owns the provider list,
// the selected provider/date/hour and the day's availability, and submits the
// final booking.
//
// All operations are synchronous and return errors; the caller (the UI event
// loop) decides whether to run them in a goroutine. State is guarded by a
// mutex so an in-flight RefreshAvailability may overlap with new selections:
// every selection bumps an internal generation counter and a refresh only
// applies its response while its generation is still current, so a stale
// response can never overwrite a newer selection.
type Scheduler struct {
	api    BookingAPI
	nav    Navigator
	picker DatePickerConfig
	logger *zap.Logger
	now    func() time.Time

	mu             sync.Mutex
	providers      []models.Provider
	provider       models.Provider
	availability   []models.AvailabilitySlot
	date           time.Time
	hour           int
	showDatePicker bool
	gen            uint64
}

// Config assembles a Scheduler.
type Config struct {
	API      BookingAPI
	Nav      Navigator
	Provider models.Provider // the provider the screen was opened with

	DatePicker DatePickerConfig
	Logger     *zap.Logger

	// Now overrides the wall clock. Optional.
	Now func() time.Time
}

// New creates a scheduler for the given initial provider, selecting today.
func New(cfg Config) (*Scheduler, error) {
	if cfg.API == nil {
		return nil, fmt.Errorf("scheduler: API is required")
	}
	if cfg.Provider.ID == "" {
		return nil, fmt.Errorf("scheduler: an initial provider is required")
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		api:      cfg.API,
		nav:      cfg.Nav,
		picker:   cfg.DatePicker,
		logger:   logger,
		now:      now,
		provider: cfg.Provider,
		date:     now(),
	}, nil
}

// LoadProviders fetches the provider list once, on screen mount. A failure is
// returned to the caller so the screen can offer a retry instead of staying
// silently empty.
func (s *Scheduler) LoadProviders(ctx context.Context) error {
	providers, err := s.api.Providers(ctx)
	if err != nil {
		return fmt.Errorf("load providers: %w", err)
	}
	s.mu.Lock()
	s.providers = providers
	s.mu.Unlock()
	return nil
}

// Providers returns the cached provider list.
func (s *Scheduler) Providers() []models.Provider {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Provider, len(s.providers))
	copy(out, s.providers)
	return out
}

// SelectedProvider returns the current provider.
func (s *Scheduler) SelectedProvider() models.Provider {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.provider
}

// SelectProvider replaces the selected provider. The hour selection is reset
// because availability for the new provider is unknown until refetched; the
// caller is expected to follow up with RefreshAvailability.
func (s *Scheduler) SelectProvider(provider models.Provider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.provider = provider
	s.hour = 0
	s.gen++
}

// SelectedDate returns the current calendar day.
func (s *Scheduler) SelectedDate() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.date
}

// ToggleDatePicker flips the picker visibility flag.
func (s *Scheduler) ToggleDatePicker() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showDatePicker = !s.showDatePicker
}

// DatePickerVisible reports whether the native picker should be shown.
func (s *Scheduler) DatePickerVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showDatePicker
}

// HandleDatePicked receives the native picker result. A nil date is a cancel
// gesture and must leave the selection untouched. On platforms where the
// picker auto-dismisses it is hidden regardless of the outcome.
func (s *Scheduler) HandleDatePicked(date *time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.picker.AutoDismissOnSelect {
		s.showDatePicker = false
	}
	if date == nil {
		return
	}
	s.date = *date
	s.hour = 0
	s.gen++
}

// SelectDate replaces the selected day directly, resetting the hour.
func (s *Scheduler) SelectDate(date time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.date = date
	s.hour = 0
	s.gen++
}

// RefreshAvailability refetches the selected provider's availability for the
// selected day. If the provider or date changes while the request is in
// flight the response is discarded and ErrSuperseded is returned; only the
// response matching the latest selection ever lands in state.
func (s *Scheduler) RefreshAvailability(ctx context.Context) error {
	s.mu.Lock()
	gen := s.gen
	providerID := s.provider.ID
	year, month, day := s.date.Date()
	s.mu.Unlock()

	slots, err := s.api.DayAvailability(ctx, providerID, year, int(month), day)
	if err != nil {
		return fmt.Errorf("load day availability: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		s.logger.Debug("discarding stale availability response",
			zap.String("providerId", providerID),
			zap.Uint64("requestGen", gen),
			zap.Uint64("currentGen", s.gen),
		)
		return ErrSuperseded
	}
	s.availability = slots
	return nil
}

// MorningSlots returns the formatted slots before noon.
func (s *Scheduler) MorningSlots() []models.HourSlot {
	morning, _ := s.partition()
	return morning
}

// AfternoonSlots returns the formatted slots from noon onward.
func (s *Scheduler) AfternoonSlots() []models.HourSlot {
	_, afternoon := s.partition()
	return afternoon
}

func (s *Scheduler) partition() (morning, afternoon []models.HourSlot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return partitionSlots(s.availability)
}

// SelectHour records the chosen hour. No validation happens here; an
// unavailable pick is caught at submit time.
func (s *Scheduler) SelectHour(hour int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hour = hour
}

// SelectedHour returns the chosen hour, 0 when none is chosen.
func (s *Scheduler) SelectedHour() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hour
}

// Submit books the selected provider at the selected day and hour. Without a
// chosen hour it fails with a ValidationError and performs no network call.
// On success the hour selection is reset, pending availability responses are
// invalidated so the caller's follow-up refresh shows the booked hour as
// taken, and the navigator is handed the confirmation parameters.
func (s *Scheduler) Submit(ctx context.Context) (*models.Appointment, error) {
	s.mu.Lock()
	hour := s.hour
	provider := s.provider
	date := s.date
	s.mu.Unlock()

	if hour == 0 {
		return nil, &ValidationError{Message: "select an available hour to create the appointment"}
	}

	when := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())

	appt, err := s.api.CreateAppointment(ctx, provider.ID, when)
	if err != nil {
		s.logger.Warn("create appointment failed",
			zap.String("providerId", provider.ID),
			zap.Time("date", when),
			zap.Error(err),
		)
		return nil, &SubmissionError{Err: err}
	}

	s.mu.Lock()
	s.hour = 0
	s.gen++
	s.mu.Unlock()

	if s.nav != nil {
		s.nav.AppointmentCreated(when, provider)
	}
	return appt, nil
}

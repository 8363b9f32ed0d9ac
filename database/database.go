// File: trimbook/database/database.go
package database

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"trimbook/models"
)

// Business hours of the booking API: first and last bookable hour of a day.
const (
	OpeningHour = 8
	ClosingHour = 17
)

var (
	ErrEmailInUse         = errors.New("e-mail address already in use")
	ErrInvalidCredentials = errors.New("incorrect email/password combination")
	ErrUserNotFound       = errors.New("user not found")
	ErrProviderNotFound   = errors.New("provider not found")
	ErrSlotTaken          = errors.New("this hour is already booked")
	ErrPastDate           = errors.New("cannot book an appointment in the past")
	ErrOutsideHours       = errors.New("appointments are only bookable between 8am and 5pm")
	ErrWrongOldPassword   = errors.New("old password does not match")
	ErrOldPasswordNeeded  = errors.New("old password is required to set a new password")
)

type userRecord struct {
	user         models.User
	passwordHash []byte
}

// DB is the in-memory store behind the development server. It keeps users,
// providers and appointments for the lifetime of the process; nothing is
// persisted, matching the disposable nature of a local backend.
type DB struct {
	mu           sync.RWMutex
	users        map[string]*userRecord
	emails       map[string]string // lowercased e-mail -> user ID
	providers    []models.Provider
	appointments map[string]map[time.Time]models.Appointment // provider ID -> slot -> booking
	avatars      map[string][]byte
	now          func() time.Time
}

// New creates an empty store.
func New() *DB {
	return &DB{
		users:        make(map[string]*userRecord),
		emails:       make(map[string]string),
		appointments: make(map[string]map[time.Time]models.Appointment),
		avatars:      make(map[string][]byte),
		now:          time.Now,
	}
}

// SetClock overrides the wall clock, for tests.
func (db *DB) SetClock(now func() time.Time) {
	db.mu.Lock()
	db.now = now
	db.mu.Unlock()
}

// CreateUser registers an account with a bcrypt-hashed password.
func (db *DB) CreateUser(name, email, password string) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	key := strings.ToLower(email)
	if _, exists := db.emails[key]; exists {
		return models.User{}, ErrEmailInUse
	}

	user := models.User{
		ID:    uuid.New().String(),
		Name:  name,
		Email: email,
	}
	db.users[user.ID] = &userRecord{user: user, passwordHash: hash}
	db.emails[key] = user.ID
	return user, nil
}

// Authenticate checks an email/password pair.
func (db *DB) Authenticate(email, password string) (models.User, error) {
	db.mu.RLock()
	id, ok := db.emails[strings.ToLower(email)]
	var rec *userRecord
	if ok {
		rec = db.users[id]
	}
	db.mu.RUnlock()

	if rec == nil {
		return models.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(rec.passwordHash, []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return rec.user, nil
}

// GetUser returns the account with the given ID.
func (db *DB) GetUser(id string) (models.User, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	rec, ok := db.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return rec.user, nil
}

// UpdateProfile applies a profile update. Setting a new password requires the
// matching old password; the update is all-or-nothing.
func (db *DB) UpdateProfile(id string, upd models.ProfileUpdate) (models.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	rec, ok := db.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	newKey := strings.ToLower(upd.Email)
	if owner, exists := db.emails[newKey]; exists && owner != id {
		return models.User{}, ErrEmailInUse
	}

	var newHash []byte
	if upd.Password != "" {
		if upd.OldPassword == "" {
			return models.User{}, ErrOldPasswordNeeded
		}
		if err := bcrypt.CompareHashAndPassword(rec.passwordHash, []byte(upd.OldPassword)); err != nil {
			return models.User{}, ErrWrongOldPassword
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(upd.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, fmt.Errorf("hash password: %w", err)
		}
		newHash = hash
	}

	delete(db.emails, strings.ToLower(rec.user.Email))
	rec.user.Name = upd.Name
	rec.user.Email = upd.Email
	db.emails[newKey] = id
	if newHash != nil {
		rec.passwordHash = newHash
	}
	return rec.user, nil
}

// SetAvatar stores the uploaded image and points the account at it.
func (db *DB) SetAvatar(id, filename string, data []byte) (models.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	rec, ok := db.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	db.avatars[filename] = data
	url := "/files/" + filename
	rec.user.AvatarURL = &url
	return rec.user, nil
}

// Avatar returns a stored avatar image.
func (db *DB) Avatar(filename string) ([]byte, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	data, ok := db.avatars[filename]
	return data, ok
}

// AddProvider registers a bookable provider.
func (db *DB) AddProvider(p models.Provider) {
	db.mu.Lock()
	db.providers = append(db.providers, p)
	db.mu.Unlock()
}

// Providers lists every provider.
func (db *DB) Providers() []models.Provider {
	db.mu.RLock()
	defer db.mu.RUnlock()
	out := make([]models.Provider, len(db.providers))
	copy(out, db.providers)
	return out
}

func (db *DB) providerExists(id string) bool {
	for _, p := range db.providers {
		if p.ID == id {
			return true
		}
	}
	return false
}

// CreateAppointment books a provider hour for a user. The timestamp is
// normalized to the top of the hour; double bookings, past dates and hours
// outside business hours are rejected.
func (db *DB) CreateAppointment(userID, providerID string, date time.Time) (models.Appointment, error) {
	slot := time.Date(date.Year(), date.Month(), date.Day(), date.Hour(), 0, 0, 0, date.Location())

	db.mu.Lock()
	defer db.mu.Unlock()

	if !db.providerExists(providerID) {
		return models.Appointment{}, ErrProviderNotFound
	}
	if slot.Hour() < OpeningHour || slot.Hour() > ClosingHour {
		return models.Appointment{}, ErrOutsideHours
	}
	if slot.Before(db.now()) {
		return models.Appointment{}, ErrPastDate
	}

	day := db.appointments[providerID]
	if day == nil {
		day = make(map[time.Time]models.Appointment)
		db.appointments[providerID] = day
	}
	key := slot.UTC()
	if _, taken := day[key]; taken {
		return models.Appointment{}, ErrSlotTaken
	}

	appt := models.Appointment{
		ID:         uuid.New().String(),
		ProviderID: providerID,
		UserID:     userID,
		Date:       slot,
		CreatedAt:  db.now(),
	}
	day[key] = appt
	return appt, nil
}

// DayAvailability reports every business hour of the given day with its
// open/taken status. Hours already in the past count as unavailable.
func (db *DB) DayAvailability(providerID string, year, month, day int) ([]models.AvailabilitySlot, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if !db.providerExists(providerID) {
		return nil, ErrProviderNotFound
	}

	booked := db.appointments[providerID]
	now := db.now()

	slots := make([]models.AvailabilitySlot, 0, ClosingHour-OpeningHour+1)
	for hour := OpeningHour; hour <= ClosingHour; hour++ {
		slot := time.Date(year, time.Month(month), day, hour, 0, 0, 0, time.Local)
		_, taken := booked[slot.UTC()]
		slots = append(slots, models.AvailabilitySlot{
			Hour:      hour,
			Available: !taken && slot.After(now),
		})
	}
	return slots, nil
}

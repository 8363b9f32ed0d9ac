package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trimbook/models"
)

func fixedClock() func() time.Time {
	return func() time.Time { return time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local) }
}

func newSeededDB(t *testing.T) (*DB, models.Provider, models.User) {
	t.Helper()
	db := New()
	db.SetClock(fixedClock())
	db.AddProvider(models.Provider{ID: "prov-1", Name: "Ana Duarte"})
	user, err := db.CreateUser("Demo", "demo@example.com", "123456")
	require.NoError(t, err)
	return db, models.Provider{ID: "prov-1", Name: "Ana Duarte"}, user
}

func TestAuthenticate(t *testing.T) {
	db, _, user := newSeededDB(t)

	got, err := db.Authenticate("demo@example.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = db.Authenticate("demo@example.com", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = db.Authenticate("ghost@example.com", "123456")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	db, _, _ := newSeededDB(t)

	_, err := db.CreateUser("Other", "Demo@Example.com", "123456")
	assert.ErrorIs(t, err, ErrEmailInUse)
}

func TestCreateAppointmentRules(t *testing.T) {
	db, prov, user := newSeededDB(t)

	when := time.Date(2024, 3, 2, 14, 0, 0, 0, time.Local)
	appt, err := db.CreateAppointment(user.ID, prov.ID, when)
	require.NoError(t, err)
	assert.Equal(t, when, appt.Date)

	t.Run("double booking", func(t *testing.T) {
		_, err := db.CreateAppointment(user.ID, prov.ID, when)
		assert.ErrorIs(t, err, ErrSlotTaken)
	})

	t.Run("minutes are normalized to the hour", func(t *testing.T) {
		_, err := db.CreateAppointment(user.ID, prov.ID, when.Add(25*time.Minute))
		assert.ErrorIs(t, err, ErrSlotTaken)
	})

	t.Run("past date", func(t *testing.T) {
		past := time.Date(2024, 2, 20, 14, 0, 0, 0, time.Local)
		_, err := db.CreateAppointment(user.ID, prov.ID, past)
		assert.ErrorIs(t, err, ErrPastDate)
	})

	t.Run("outside business hours", func(t *testing.T) {
		night := time.Date(2024, 3, 2, 3, 0, 0, 0, time.Local)
		_, err := db.CreateAppointment(user.ID, prov.ID, night)
		assert.ErrorIs(t, err, ErrOutsideHours)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := db.CreateAppointment(user.ID, "ghost", when)
		assert.ErrorIs(t, err, ErrProviderNotFound)
	})
}

func TestDayAvailability(t *testing.T) {
	db, prov, user := newSeededDB(t)

	_, err := db.CreateAppointment(user.ID, prov.ID, time.Date(2024, 3, 2, 14, 0, 0, 0, time.Local))
	require.NoError(t, err)

	slots, err := db.DayAvailability(prov.ID, 2024, 3, 2)
	require.NoError(t, err)
	require.Len(t, slots, ClosingHour-OpeningHour+1)

	for _, slot := range slots {
		if slot.Hour == 14 {
			assert.False(t, slot.Available, "booked hour must be taken")
		} else {
			assert.True(t, slot.Available, "hour %d should be open", slot.Hour)
		}
	}
}

func TestDayAvailabilityMarksPastHours(t *testing.T) {
	db, prov, _ := newSeededDB(t)

	// The clock reads 09:00 on this day; 8am is gone, 10am is still open.
	slots, err := db.DayAvailability(prov.ID, 2024, 3, 1)
	require.NoError(t, err)

	byHour := make(map[int]bool)
	for _, slot := range slots {
		byHour[slot.Hour] = slot.Available
	}
	assert.False(t, byHour[8])
	assert.False(t, byHour[9], "the current hour has already started")
	assert.True(t, byHour[10])
}

func TestUpdateProfile(t *testing.T) {
	db, _, user := newSeededDB(t)

	t.Run("name and email only", func(t *testing.T) {
		got, err := db.UpdateProfile(user.ID, models.ProfileUpdate{Name: "Renamed", Email: "new@example.com"})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Name)
		assert.Equal(t, "new@example.com", got.Email)

		// The old password still works: no password change happened.
		_, err = db.Authenticate("new@example.com", "123456")
		assert.NoError(t, err)
	})

	t.Run("password change requires matching old password", func(t *testing.T) {
		_, err := db.UpdateProfile(user.ID, models.ProfileUpdate{
			Name: "Renamed", Email: "new@example.com",
			OldPassword: "wrong", Password: "abcdef", PasswordConfirmation: "abcdef",
		})
		assert.ErrorIs(t, err, ErrWrongOldPassword)

		_, err = db.UpdateProfile(user.ID, models.ProfileUpdate{
			Name: "Renamed", Email: "new@example.com",
			Password: "abcdef", PasswordConfirmation: "abcdef",
		})
		assert.ErrorIs(t, err, ErrOldPasswordNeeded)

		_, err = db.UpdateProfile(user.ID, models.ProfileUpdate{
			Name: "Renamed", Email: "new@example.com",
			OldPassword: "123456", Password: "abcdef", PasswordConfirmation: "abcdef",
		})
		require.NoError(t, err)

		_, err = db.Authenticate("new@example.com", "abcdef")
		assert.NoError(t, err)
	})

	t.Run("email collision", func(t *testing.T) {
		_, err := db.CreateUser("Other", "other@example.com", "123456")
		require.NoError(t, err)

		_, err = db.UpdateProfile(user.ID, models.ProfileUpdate{Name: "Renamed", Email: "other@example.com"})
		assert.ErrorIs(t, err, ErrEmailInUse)
	})
}

func TestSetAvatar(t *testing.T) {
	db, _, user := newSeededDB(t)

	got, err := db.SetAvatar(user.ID, user.ID+".jpeg", []byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NotNil(t, got.AvatarURL)
	assert.Equal(t, "/files/"+user.ID+".jpeg", *got.AvatarURL)

	data, ok := db.Avatar(user.ID + ".jpeg")
	assert.True(t, ok)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

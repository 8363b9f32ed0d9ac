package routes

import (
	"context"
	"io"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trimbook/api"
	"trimbook/config"
	"trimbook/database"
	"trimbook/models"
	"trimbook/services/profile"
	"trimbook/services/scheduler"
	"trimbook/session"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.LoadConfig()
	os.Exit(m.Run())
}

func newTestBackend(t *testing.T) (*api.Client, *database.DB) {
	t.Helper()

	db := database.New()
	_, err := database.Seed(db)
	require.NoError(t, err)

	srv := httptest.NewServer(SetupRouter(db))
	t.Cleanup(srv.Close)

	client, err := api.New(api.Config{BaseURL: srv.URL})
	require.NoError(t, err)
	return client, db
}

func signIn(t *testing.T, client *api.Client) models.User {
	t.Helper()
	payload, err := client.SignIn(context.Background(), "demo@trimbook.local", "123456")
	require.NoError(t, err)
	require.NotEmpty(t, payload.Token)
	return payload.User
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	client, _ := newTestBackend(t)

	_, err := client.SignIn(context.Background(), "demo@trimbook.local", "wrong")
	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.StatusCode)
}

func TestProvidersRequireAuth(t *testing.T) {
	client, _ := newTestBackend(t)

	_, err := client.Providers(context.Background())
	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.StatusCode)
}

func TestBookingFlow(t *testing.T) {
	client, _ := newTestBackend(t)
	signIn(t, client)
	ctx := context.Background()

	providers, err := client.Providers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, providers)
	prov := providers[0]

	tomorrow := time.Now().AddDate(0, 0, 1)
	year, month, day := tomorrow.Date()

	slots, err := client.DayAvailability(ctx, prov.ID, year, int(month), day)
	require.NoError(t, err)
	require.Len(t, slots, database.ClosingHour-database.OpeningHour+1)
	for _, slot := range slots {
		assert.True(t, slot.Available, "a fresh day has every hour open")
	}

	when := time.Date(year, month, day, 14, 0, 0, 0, time.Local)
	appt, err := client.CreateAppointment(ctx, prov.ID, when)
	require.NoError(t, err)
	assert.Equal(t, prov.ID, appt.ProviderID)
	assert.True(t, when.Equal(appt.Date))

	// The booked hour now shows as taken.
	slots, err = client.DayAvailability(ctx, prov.ID, year, int(month), day)
	require.NoError(t, err)
	for _, slot := range slots {
		if slot.Hour == 14 {
			assert.False(t, slot.Available)
		}
	}

	// Double booking the same hour is rejected.
	_, err = client.CreateAppointment(ctx, prov.ID, when)
	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.Equal(t, "this hour is already booked", apiErr.Message)
}

func TestAppointmentRejectsPastAndOffHours(t *testing.T) {
	client, _ := newTestBackend(t)
	signIn(t, client)
	ctx := context.Background()

	providers, err := client.Providers(ctx)
	require.NoError(t, err)
	prov := providers[0]

	yesterday := time.Now().AddDate(0, 0, -1)
	_, err = client.CreateAppointment(ctx, prov.ID, yesterday)
	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)

	tomorrow := time.Now().AddDate(0, 0, 1)
	midnight := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 3, 0, 0, 0, time.Local)
	_, err = client.CreateAppointment(ctx, prov.ID, midnight)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)
}

func TestSchedulerAgainstBackend(t *testing.T) {
	client, _ := newTestBackend(t)
	signIn(t, client)
	ctx := context.Background()

	providers, err := client.Providers(ctx)
	require.NoError(t, err)
	prov := providers[0]

	sched, err := scheduler.New(scheduler.Config{
		API:      client,
		Provider: prov,
	})
	require.NoError(t, err)

	require.NoError(t, sched.LoadProviders(ctx))
	assert.Len(t, sched.Providers(), len(providers))

	sched.SelectDate(time.Now().AddDate(0, 0, 1))
	require.NoError(t, sched.RefreshAvailability(ctx))

	morning := sched.MorningSlots()
	afternoon := sched.AfternoonSlots()
	require.NotEmpty(t, morning)
	require.NotEmpty(t, afternoon)
	assert.Equal(t, database.OpeningHour, morning[0].Hour)
	assert.Equal(t, "08:00", morning[0].HourFormatted)

	sched.SelectHour(14)
	appt, err := sched.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 14, appt.Date.Hour())
	assert.Equal(t, 0, sched.SelectedHour())

	// The follow-up refresh reflects the booked hour as taken.
	require.NoError(t, sched.RefreshAvailability(ctx))
	for _, slot := range sched.AfternoonSlots() {
		if slot.Hour == 14 {
			assert.False(t, slot.Available)
		}
	}
}

type stubPicker struct{ content string }

func (p stubPicker) PickImage(context.Context, profile.PickerOptions) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(p.content)), nil
}

type stubNav struct{ backCalls int }

func (n *stubNav) Back() { n.backCalls++ }

func TestProfileFlowAgainstBackend(t *testing.T) {
	client, _ := newTestBackend(t)
	user := signIn(t, client)
	ctx := context.Background()

	sess := session.New(user, "token")
	nav := &stubNav{}
	editor, err := profile.New(profile.Config{
		API:     client,
		Session: sess,
		Nav:     nav,
		Picker:  stubPicker{content: "jpeg-bytes"},
	})
	require.NoError(t, err)

	// Wrong old password is rejected by the backend, session untouched.
	form := editor.Form()
	form.OldPassword = "not-it"
	form.Password = "abcdef"
	form.PasswordConfirmation = "abcdef"
	editor.SetForm(form)

	err = editor.Submit(ctx)
	var serr *profile.SubmissionError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, user, sess.User())

	// Correct old password changes name, email and password.
	form.Name = "Demo Renamed"
	form.Email = "renamed@trimbook.local"
	form.OldPassword = "123456"
	editor.SetForm(form)

	require.NoError(t, editor.Submit(ctx))
	assert.Equal(t, "Demo Renamed", sess.User().Name)
	assert.Equal(t, "renamed@trimbook.local", sess.User().Email)
	assert.Equal(t, 1, nav.backCalls)

	// The new password now signs in.
	_, err = client.SignIn(ctx, "renamed@trimbook.local", "abcdef")
	require.NoError(t, err)

	// Avatar upload replaces the whole session user.
	require.NoError(t, editor.UpdateAvatar(ctx))
	require.NotNil(t, sess.User().AvatarURL)
	assert.Equal(t, "/files/"+user.ID+".jpeg", *sess.User().AvatarURL)
}

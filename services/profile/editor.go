// File: trimbook/services/profile/editor.go
package profile

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"trimbook/models"
)

// Editor is the profile-editing view-model: it owns the edit form, validates
// it at submit time, pushes the update to the backend and replaces the shared
// session user from the response.
type Editor struct {
	api     ProfileAPI
	session SessionStore
	nav     Navigator
	picker  ImagePicker
	logger  *zap.Logger

	mu   sync.Mutex
	form Form
}

// Config assembles an Editor.
type Config struct {
	API     ProfileAPI
	Session SessionStore
	Nav     Navigator
	Picker  ImagePicker
	Logger  *zap.Logger
}

var defaultPickerOptions = PickerOptions{
	Title:             "Select an avatar",
	TakePhoto:         "Use camera",
	ChooseFromLibrary: "Choose from gallery",
	Cancel:            "Cancel",
}

// New creates an editor seeded from the session user.
func New(cfg Config) (*Editor, error) {
	if cfg.API == nil {
		return nil, fmt.Errorf("profile: API is required")
	}
	if cfg.Session == nil {
		return nil, fmt.Errorf("profile: session is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	user := cfg.Session.User()
	return &Editor{
		api:     cfg.API,
		session: cfg.Session,
		nav:     cfg.Nav,
		picker:  cfg.Picker,
		logger:  logger,
		form: Form{
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}

// Form returns the current form snapshot.
func (e *Editor) Form() Form {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.form
}

// SetForm replaces the form contents.
func (e *Editor) SetForm(form Form) {
	e.mu.Lock()
	e.form = form
	e.mu.Unlock()
}

// Submit validates the form and pushes the update. Validation failures come
// back as a *ValidationError with every failed field; backend failures as a
// *SubmissionError with the form untouched. The update payload carries the
// password triple only when old_password was filled in. On success the
// session user is replaced with the response body and the editor navigates
// back.
func (e *Editor) Submit(ctx context.Context) error {
	form := e.Form()

	if fieldErrs := form.Validate(); len(fieldErrs) > 0 {
		return &ValidationError{Fields: fieldErrs}
	}

	upd := models.ProfileUpdate{
		Name:  form.Name,
		Email: form.Email,
	}
	if form.OldPassword != "" {
		upd.OldPassword = form.OldPassword
		upd.Password = form.Password
		upd.PasswordConfirmation = form.PasswordConfirmation
	}

	user, err := e.api.UpdateProfile(ctx, upd)
	if err != nil {
		e.logger.Warn("profile update failed", zap.Error(err))
		return &SubmissionError{Err: err}
	}

	e.session.SetUser(*user)
	if e.nav != nil {
		e.nav.Back()
	}
	return nil
}

// UpdateAvatar runs the image-selection dialog and uploads the chosen image
// as the new avatar. Cancelling is a silent no-op; a selection or upload
// failure is returned. On success the session user is replaced with the
// response body.
func (e *Editor) UpdateAvatar(ctx context.Context) error {
	if e.picker == nil {
		return fmt.Errorf("profile: no image picker configured")
	}

	image, err := e.picker.PickImage(ctx, defaultPickerOptions)
	if errors.Is(err, ErrCancelled) {
		return nil
	}
	if err != nil {
		e.logger.Warn("avatar selection failed", zap.Error(err))
		return fmt.Errorf("select avatar image: %w", err)
	}
	defer image.Close()

	filename := e.session.User().ID + ".jpeg"
	user, err := e.api.UpdateAvatar(ctx, filename, image)
	if err != nil {
		e.logger.Warn("avatar upload failed", zap.Error(err))
		return &SubmissionError{Err: err}
	}

	e.session.SetUser(*user)
	return nil
}

// SignOut ends the shared session.
func (e *Editor) SignOut() {
	e.session.SignOut()
}

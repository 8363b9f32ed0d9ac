package profile

import (
	"context"
	"errors"
	"io"

	"trimbook/models"
)

// ProfileAPI is the backend surface the profile editor consumes.
type ProfileAPI interface {
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)
	UpdateAvatar(ctx context.Context, filename string, image io.Reader) (*models.User, error)
}

// SessionStore is the shared authenticated-session surface.
type SessionStore interface {
	User() models.User
	SetUser(models.User)
	SignOut()
}

// Navigator is the navigation stack surface the editor drives.
type Navigator interface {
	Back()
}

// ErrCancelled is returned by an ImagePicker when the user dismisses the
// dialog without choosing an image.
var ErrCancelled = errors.New("image selection cancelled")

// PickerOptions configures the three-choice image selection dialog.
type PickerOptions struct {
	Title             string
	TakePhoto         string
	ChooseFromLibrary string
	Cancel            string
}

// ImagePicker is the device camera/gallery surface. PickImage returns the
// selected image content, ErrCancelled on dismissal, or any other error when
// selection fails.
type ImagePicker interface {
	PickImage(ctx context.Context, opts PickerOptions) (io.ReadCloser, error)
}

package models

// User is the authenticated account record shared across screens. It is only
// ever replaced wholesale from an API response, never merged field by field.
type User struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	AvatarURL *string `json:"avatar_url"`
}

// ProfileUpdate is the update-profile request body. The password triple is
// present only when the user is changing their password; OldPassword acts as
// the gate for the whole group.
type ProfileUpdate struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	OldPassword          string `json:"old_password,omitempty"`
	Password             string `json:"password,omitempty"`
	PasswordConfirmation string `json:"password_confirmation,omitempty"`
}

package models

// Provider is a bookable service professional as returned by the providers API.
type Provider struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatar_url"`
}

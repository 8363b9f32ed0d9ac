package models

import "time"

// Appointment is a confirmed booking of one provider hour.
type Appointment struct {
	ID         string    `json:"id"`
	ProviderID string    `json:"provider_id"`
	UserID     string    `json:"user_id"`
	Date       time.Time `json:"date"`
	CreatedAt  time.Time `json:"created_at"`
}

// AppointmentInput is the create-appointment request body.
type AppointmentInput struct {
	ProviderID string    `json:"provider_id"`
	Date       time.Time `json:"date"`
}

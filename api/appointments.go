package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"trimbook/models"
)

// CreateAppointment books the given provider at the given timestamp.
func (c *Client) CreateAppointment(ctx context.Context, providerID string, date time.Time) (*models.Appointment, error) {
	if providerID == "" {
		return nil, fmt.Errorf("api: provider id is required")
	}
	input := models.AppointmentInput{
		ProviderID: providerID,
		Date:       date,
	}
	var appt models.Appointment
	if err := c.send(ctx, http.MethodPost, "appointments", input, &appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

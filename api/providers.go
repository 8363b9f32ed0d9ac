package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"trimbook/models"
)

// Providers fetches the full provider list.
func (c *Client) Providers(ctx context.Context) ([]models.Provider, error) {
	var providers []models.Provider
	if err := c.get(ctx, "providers", nil, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

// DayAvailability fetches one provider's hourly availability for a calendar day.
func (c *Client) DayAvailability(ctx context.Context, providerID string, year, month, day int) ([]models.AvailabilitySlot, error) {
	if providerID == "" {
		return nil, fmt.Errorf("api: provider id is required")
	}
	query := url.Values{
		"year":  {strconv.Itoa(year)},
		"month": {strconv.Itoa(month)},
		"day":   {strconv.Itoa(day)},
	}
	var slots []models.AvailabilitySlot
	if err := c.get(ctx, "providers/"+providerID+"/day-availability", query, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"trimbook/database"
	"trimbook/utils"
)

// ListProviders returns every bookable provider.
func (h *Handler) ListProviders(c *gin.Context) {
	c.JSON(http.StatusOK, h.DB.Providers())
}

// DayAvailability returns one provider's hourly availability for the calendar
// day given by the year/month/day query parameters.
func (h *Handler) DayAvailability(c *gin.Context) {
	providerID := c.Param("id")

	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	day, errD := strconv.Atoi(c.Query("day"))
	if errY != nil || errM != nil || errD != nil || month < 1 || month > 12 || day < 1 || day > 31 {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "year, month and day query parameters are required")
		return
	}

	slots, err := h.DB.DayAvailability(providerID, year, month, day)
	if err != nil {
		if errors.Is(err, database.ErrProviderNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load availability", err.Error())
		return
	}

	c.JSON(http.StatusOK, slots)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trimbook/database"
	"trimbook/middleware"
	"trimbook/models"
	"trimbook/utils"
)

// CreateAppointment books a provider hour for the authenticated user.
func (h *Handler) CreateAppointment(c *gin.Context) {
	var input models.AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.ProviderID == "" || input.Date.IsZero() {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "provider_id and date are required")
		return
	}

	userID := middleware.UserID(c)
	appt, err := h.DB.CreateAppointment(userID, input.ProviderID, input.Date)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrProviderNotFound):
			utils.JSONError(c, http.StatusNotFound, err.Error(), "")
		case errors.Is(err, database.ErrSlotTaken),
			errors.Is(err, database.ErrPastDate),
			errors.Is(err, database.ErrOutsideHours):
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to create appointment", err.Error())
		}
		return
	}

	h.Logger.Info("appointment created",
		zap.String("userId", userID),
		zap.String("providerId", appt.ProviderID),
		zap.Time("date", appt.Date),
	)
	c.JSON(http.StatusOK, appt)
}

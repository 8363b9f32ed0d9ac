package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"trimbook/database"
	"trimbook/utils"
)

const sessionTokenTTL = 7 * 24 * time.Hour

// CreateSession authenticates an email/password pair and issues a JWT.
func (h *Handler) CreateSession(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	user, err := h.DB.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, database.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to authenticate", err.Error())
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, sessionTokenTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

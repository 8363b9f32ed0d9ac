package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"trimbook/database"
	"trimbook/middleware"
	"trimbook/models"
	"trimbook/utils"
)

const maxAvatarBytes = 5 << 20

// UpdateProfile applies name/email changes and, when the old password is
// supplied, a password change for the authenticated user.
func (h *Handler) UpdateProfile(c *gin.Context) {
	var upd models.ProfileUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if upd.Name == "" || upd.Email == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "name and email are required")
		return
	}
	if upd.Password != "" && upd.Password != upd.PasswordConfirmation {
		utils.JSONError(c, http.StatusBadRequest, "passwords don't match", "")
		return
	}

	user, err := h.DB.UpdateProfile(middleware.UserID(c), upd)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrUserNotFound):
			utils.JSONError(c, http.StatusNotFound, err.Error(), "")
		case errors.Is(err, database.ErrEmailInUse),
			errors.Is(err, database.ErrOldPasswordNeeded):
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		case errors.Is(err, database.ErrWrongOldPassword):
			utils.JSONError(c, http.StatusUnauthorized, err.Error(), "")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to update profile", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateAvatar stores the uploaded avatar image and returns the updated user.
func (h *Handler) UpdateAvatar(c *gin.Context) {
	file, header, err := c.Request.FormFile("avatar")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "an avatar file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxAvatarBytes+1))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to read avatar", err.Error())
		return
	}
	if len(data) > maxAvatarBytes {
		utils.JSONError(c, http.StatusBadRequest, "avatar too large", "maximum size is 5 MiB")
		return
	}

	user, err := h.DB.SetAvatar(middleware.UserID(c), header.Filename, data)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update avatar", err.Error())
		return
	}

	c.JSON(http.StatusOK, user)
}

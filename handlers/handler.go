package handlers

import (
	"go.uber.org/zap"

	"trimbook/database"
	"trimbook/utils"
)

// Handler bundles the API endpoints over the in-memory store.
type Handler struct {
	DB     *database.DB
	Logger *zap.Logger
}

// NewHandler creates a handler bundle.
func NewHandler(db *database.DB) *Handler {
	return &Handler{
		DB:     db,
		Logger: utils.GetLogger(),
	}
}

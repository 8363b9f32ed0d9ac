package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"trimbook/database"
	"trimbook/handlers"
	"trimbook/middleware"
	"trimbook/utils"
)

// SetupRouter assembles the development API router over the given store.
func SetupRouter(db *database.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins(),
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-Id"},
		MaxAge:       12 * time.Hour,
	}))

	h := handlers.NewHandler(db)

	router.POST("/sessions", h.CreateSession)

	authed := router.Group("/")
	authed.Use(middleware.AuthRequired())
	{
		authed.GET("/providers", h.ListProviders)
		authed.GET("/providers/:id/day-availability", h.DayAvailability)
		authed.POST("/appointments", h.CreateAppointment)
		authed.PUT("/profile", h.UpdateProfile)
		authed.PATCH("/users/avatar", h.UpdateAvatar)
	}

	return router
}

func allowedOrigins() []string {
	// Local development only; the dev server is never exposed publicly.
	return []string{"http://localhost:3000", "http://localhost:19006"}
}

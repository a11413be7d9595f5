package routes

import (
	"time"

	"concierge/handlers"
	"concierge/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAssistantRoutes registers the conversational resolution endpoints.
func RegisterAssistantRoutes(r *gin.Engine, assistant *handlers.AssistantHandler) {
	api := r.Group("/api/assistant")
	{
		api.POST("/resolve", assistant.Resolve)
		api.POST("/confirm", assistant.Confirm)
		api.DELETE("/session/:sessionID", assistant.CancelSession)
	}
}

// RegisterBookingRoutes registers the persisted-bookings endpoints.
func RegisterBookingRoutes(r *gin.Engine, bookings *handlers.BookingsHandler) {
	api := r.Group("/api/bookings")
	{
		api.GET("", bookings.List)
		api.DELETE("/:id", bookings.Cancel)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, assistant *handlers.AssistantHandler, bookings *handlers.BookingsHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterAssistantRoutes(r, assistant)
	RegisterBookingRoutes(r, bookings)
}

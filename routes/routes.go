package routes

import (
	"net/http"
	"time"

	"telecare/handlers"
	"telecare/middleware"
	"telecare/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers availability and slot endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, availability *handlers.AvailabilityHandler) {
	api := r.Group("/api/availability")
	{
		// Patients browse availability without mutating it.
		api.GET("/:doctorId", availability.GetWeeklyAvailabilityHandler)
		api.GET("/:doctorId/day/:weekday", availability.GetDayAvailabilityHandler)
		api.GET("/:doctorId/slots", availability.GetSlotsHandler)
		api.GET("/:doctorId/check", availability.CheckSlotHandler)

		// Only the doctor edits their own schedule.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole("doctor"))
		protected.PUT("", availability.SetWeeklyAvailabilityHandler)
	}
}

// RegisterAppointmentRoutes registers the booking endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, appointment *handlers.AppointmentHandler) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", appointment.CreateAppointmentHandler)
		api.PATCH("/:id/status", appointment.UpdateAppointmentStatusHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, availability *handlers.AvailabilityHandler, appointment *handlers.AppointmentHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAvailabilityRoutes(r, availability)
	RegisterAppointmentRoutes(r, appointment)
	RegisterHealthRoute(r)
}

package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"medagenda/handlers"
	"medagenda/middleware"
	"medagenda/utils"
)

// RegisterScheduleRoutes registers schedule reads plus the doctor's own
// write endpoints. Writes additionally require the doctor role; ownership
// of the path doctorId is enforced in the handlers.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule/:doctorId")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/settings", hb.GetWorkSettingsHandler)
		api.GET("/template", hb.GetMasterTemplateHandler)
		api.GET("/slots", hb.GetBookableSlotsHandler)
		api.GET("/dates", hb.ListAvailableDatesHandler)
		api.GET("/month", hb.MonthSlotCountsHandler)

		protected := api.Group("")
		protected.Use(middleware.RequireRole("doctor"))
		protected.PUT("/settings", hb.SaveWorkSettingsHandler)
		protected.POST("/blocks/normalize", hb.NormalizeBlocksHandler)
		protected.PUT("/overrides/:date", hb.SaveDateOverrideHandler)
	}
}

// RegisterAppointmentRoutes registers the booking endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.RequestAppointmentHandler)
		api.PATCH("/:id/status", hb.UpdateAppointmentStatusHandler)
		api.GET("", hb.ListAppointmentsHandler)
	}
}

// RegisterSearchRoutes registers the nearby-doctor search.
func RegisterSearchRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/nearby", hb.FindNearbyDoctorsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": status})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterScheduleRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterSearchRoutes(r, hb)
	RegisterHealthRoute(r)
}

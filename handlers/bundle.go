package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Doctor scheduling endpoints.
	GetWorkSettingsHandler    gin.HandlerFunc
	SaveWorkSettingsHandler   gin.HandlerFunc
	NormalizeBlocksHandler    gin.HandlerFunc
	SaveDateOverrideHandler   gin.HandlerFunc
	GetMasterTemplateHandler  gin.HandlerFunc
	GetBookableSlotsHandler   gin.HandlerFunc
	ListAvailableDatesHandler gin.HandlerFunc
	MonthSlotCountsHandler    gin.HandlerFunc

	// Appointment endpoints.
	RequestAppointmentHandler      gin.HandlerFunc
	UpdateAppointmentStatusHandler gin.HandlerFunc
	ListAppointmentsHandler        gin.HandlerFunc

	// Search endpoints.
	FindNearbyDoctorsHandler gin.HandlerFunc
}

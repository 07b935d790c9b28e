package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medagenda/services/scheduling"
	"medagenda/utils"
)

// RequestAppointmentHandler creates a requested appointment for the caller.
func (h *SchedulingHandler) RequestAppointmentHandler(c *gin.Context) {
	var input scheduling.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	// The token decides who is booking, not the payload.
	input.PatientID = callerID(c)

	appt, err := h.Svc.RequestBooking(c.Request.Context(), input)
	if err != nil {
		mapSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// UpdateAppointmentStatusHandler applies a status transition to one
// appointment.
func (h *SchedulingHandler) UpdateAppointmentStatusHandler(c *gin.Context) {
	id := c.Param("id")
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	appt, err := h.Svc.UpdateAppointmentStatus(c.Request.Context(), id, input.Status, callerID(c), callerRole(c))
	if err != nil {
		mapSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// ListAppointmentsHandler returns the caller's appointments, newest slot
// first. Doctors see appointments addressed to them, patients their own.
func (h *SchedulingHandler) ListAppointmentsHandler(c *gin.Context) {
	appts, err := h.Svc.ListAppointments(c.Request.Context(), callerID(c), callerRole(c))
	if err != nil {
		mapSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

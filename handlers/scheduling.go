package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"medagenda/models"
	"medagenda/services/scheduling"
	"medagenda/utils"
)

// SchedulingHandler exposes the scheduling engine over HTTP.
type SchedulingHandler struct {
	Svc scheduling.SchedulingService
}

func NewSchedulingHandler(svc scheduling.SchedulingService) *SchedulingHandler {
	return &SchedulingHandler{Svc: svc}
}

// callerID returns the authenticated user's ID from the request context.
func callerID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

func callerRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}

// mapSchedulingError translates service errors to an HTTP status.
func mapSchedulingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, scheduling.ErrInvalidFormat), errors.Is(err, scheduling.ErrOutOfRange):
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
	case errors.Is(err, scheduling.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	case errors.Is(err, scheduling.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, "forbidden", err.Error())
	case scheduling.IsSlotTaken(err):
		utils.JSONError(c, http.StatusConflict, "slot already taken", err.Error())
	case errors.Is(err, scheduling.ErrSlotNotOffered), errors.Is(err, scheduling.ErrInvalidTransition):
		utils.JSONError(c, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, scheduling.ErrStoreUnavailable):
		utils.JSONError(c, http.StatusServiceUnavailable, "storage temporarily unavailable", "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal server error", "")
	}
}

// requireOwnDoctorID aborts unless the authenticated caller is the doctor
// named in the path. Returns the doctor ID and whether the check passed.
func requireOwnDoctorID(c *gin.Context) (string, bool) {
	doctorID := c.Param("doctorId")
	if doctorID != callerID(c) {
		utils.JSONError(c, http.StatusForbidden, "forbidden", "you can only modify your own schedule")
		return "", false
	}
	return doctorID, true
}

// GetWorkSettingsHandler returns a doctor's recurring work settings.
func (h *SchedulingHandler) GetWorkSettingsHandler(c *gin.Context) {
	settings, err := h.Svc.GetWorkSettings(c.Request.Context(), c.Param("doctorId"))
	if err != nil {
		mapSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// SaveWorkSettingsHandler validates and persists recurring work settings.
func (h *SchedulingHandler) SaveWorkSettingsHandler(c *gin.Context) {
	doctorID, ok := requireOwnDoctorID(c)
	if !ok {
		return
	}
	var settings models.WorkSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	saved, err := h.Svc.SaveWorkSettings(c.Request.Context(), doctorID, settings)
	if err != nil {
		mapSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// NormalizeBlocksHandler canonicalizes a draft block sequence without
// persisting anything. The block editor calls it on every edit.
func (h *SchedulingHandler) NormalizeBlocksHandler(c *gin.Context) {
	var input struct {
		Blocks       []models.TimeRange `json:"blocks" binding:"required"`
		SlotDuration int                `json:"slotDuration"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"blocks": h.Svc.NormalizeBlocks(input.Blocks, input.SlotDuration),
	})
}

// GetMasterTemplateHandler returns the recurring-settings slot template for
// a date, ignoring any per-date override.
func (h *SchedulingHandler) GetMasterTemplateHandler(c *gin.Context) {
	doctorID := c.Param("doctorId")
	date := c.Query("date")
	slots, err := h.Svc.GetMasterTemplate(c.Request.Context(), doctorID, date)
	if err != nil {
		mapSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctorId": doctorID, "date": date, "slots": slots})
}

// GetBookableSlotsHandler resolves a date's offered slots with availability
// labels.
func (h *SchedulingHandler) GetBookableSlotsHandler(c *gin.Context) {
	doctorID := c.Param("doctorId")
	date := c.Query("date")
	slots, err := h.Svc.GetBookableSlots(c.Request.Context(), doctorID, date)
	if err != nil {
		mapSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctorId": doctorID, "date": date, "slots": slots})
}

// SaveDateOverrideHandler stores the caller's chosen slots for one date. An
// empty selection removes the override.
func (h *SchedulingHandler) SaveDateOverrideHandler(c *gin.Context) {
	doctorID, ok := requireOwnDoctorID(c)
	if !ok {
		return
	}
	date := c.Param("date")
	var input struct {
		Slots []string `json:"slots"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	deleted, err := h.Svc.SaveDateOverride(c.Request.Context(), doctorID, date, input.Slots)
	if err != nil {
		mapSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "deleted": deleted})
}

// ListAvailableDatesHandler returns upcoming dates a doctor has published.
func (h *SchedulingHandler) ListAvailableDatesHandler(c *gin.Context) {
	doctorID := c.Param("doctorId")
	daysAhead := 60
	if raw := c.Query("days"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			daysAhead = n
		}
	}
	dates, err := h.Svc.ListAvailableDates(c.Request.Context(), doctorID, daysAhead)
	if err != nil {
		mapSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctorId": doctorID, "dates": dates})
}

// MonthSlotCountsHandler returns per-date published slot counts for one
// "YYYY-MM" month, for the calendar heat view.
func (h *SchedulingHandler) MonthSlotCountsHandler(c *gin.Context) {
	doctorID := c.Param("doctorId")
	month := c.Query("month")
	counts, err := h.Svc.MonthSlotCounts(c.Request.Context(), doctorID, month)
	if err != nil {
		mapSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctorId": doctorID, "month": month, "counts": counts})
}

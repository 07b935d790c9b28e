package scheduling

import (
	"context"

	"medagenda/models"
)

// BookingInput is a patient's booking request for one slot.
type BookingInput struct {
	DoctorID  string `json:"doctorId" binding:"required"`
	PatientID string `json:"patientId"`
	Date      string `json:"date" binding:"required"` // "YYYY-MM-DD"
	Slot      string `json:"slot" binding:"required"` // "HH:MM"
	Reason    string `json:"reason"`
}

// SchedulingService is the scheduling engine exposed to the HTTP layer.
type SchedulingService interface {
	// GetWorkSettings returns a doctor's stored settings, or fresh defaults
	// when none have been saved yet.
	GetWorkSettings(ctx context.Context, doctorID string) (models.WorkSettings, error)
	// SaveWorkSettings drops unusable blocks, sorts and dedups the rest,
	// floors the slot duration and persists. The normalized settings are
	// returned.
	SaveWorkSettings(ctx context.Context, doctorID string, settings models.WorkSettings) (models.WorkSettings, error)

	// NormalizeBlocks canonicalizes a draft block sequence from the manual
	// block editor: sorted, gapless, non-overlapping, clamped to the day.
	NormalizeBlocks(blocks []models.TimeRange, slotDuration int) []models.TimeRange

	// GetMasterTemplate returns the recurring-settings slot template for a
	// date, ignoring overrides.
	GetMasterTemplate(ctx context.Context, doctorID, date string) ([]string, error)
	// GetBookableSlots resolves a date's offered slots and labels each as
	// available, past or busy.
	GetBookableSlots(ctx context.Context, doctorID, date string) ([]models.SlotView, error)
	// SaveDateOverride stores the doctor's chosen slots for a date. An empty
	// selection deletes the override document; deleted reports which
	// happened.
	SaveDateOverride(ctx context.Context, doctorID, date string, slots []string) (deleted bool, err error)
	// ListAvailableDates returns upcoming dates (today inclusive, daysAhead
	// horizon) that have an override document.
	ListAvailableDates(ctx context.Context, doctorID string, daysAhead int) ([]string, error)
	// MonthSlotCounts maps each date of a "YYYY-MM" month with an override
	// to its published slot count.
	MonthSlotCounts(ctx context.Context, doctorID, month string) (map[string]int, error)

	// RequestBooking re-checks the busy set and creates a requested
	// appointment, or fails with *SlotTakenError.
	RequestBooking(ctx context.Context, input BookingInput) (*models.Appointment, error)
	// UpdateAppointmentStatus applies a status transition on behalf of the
	// appointment's doctor or patient and notifies the counterpart.
	// Callers who are neither party get ErrForbidden.
	UpdateAppointmentStatus(ctx context.Context, id, status, actorID, actorRole string) (*models.Appointment, error)
	// ListAppointments returns a user's appointments, newest slot first.
	ListAppointments(ctx context.Context, userID, role string) ([]models.Appointment, error)
}

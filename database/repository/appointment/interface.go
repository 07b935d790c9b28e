package appointmentRepo

import (
	"context"
	"time"

	"medagenda/models"
)

// AppointmentRepository persists appointment records.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// ListByDoctorBetween returns the doctor's appointments with SlotStart
	// inside [start, end], any status. Conflict filtering happens above.
	ListByDoctorBetween(ctx context.Context, doctorID string, start, end time.Time) ([]models.Appointment, error)
	// ListByUser returns appointments for a doctor or patient, newest slot
	// first.
	ListByUser(ctx context.Context, userID, role string) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, id, status, actor string) error
}

package models

import "time"

// Appointment statuses. Requested and accepted occupy a slot; rejected and
// cancelled release it.
const (
	AppointmentRequested = "requested"
	AppointmentAccepted  = "accepted"
	AppointmentRejected  = "rejected"
	AppointmentCancelled = "cancelled"
	AppointmentCompleted = "completed"
)

// Appointment is one patient's claim on a doctor's slot.
type Appointment struct {
	ID           string    `bson:"id" json:"id"`
	DoctorID     string    `bson:"doctorId" json:"doctorId"`
	PatientID    string    `bson:"patientId" json:"patientId"`
	Status       string    `bson:"status" json:"status"`
	SlotStart    time.Time `bson:"slotStart" json:"slotStart"`
	SlotEnd      time.Time `bson:"slotEnd" json:"slotEnd"`
	Reason       string    `bson:"reason,omitempty" json:"reason,omitempty"`
	RequestedAt  time.Time `bson:"requestedAt" json:"requestedAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
	LastChangeBy string    `bson:"lastChangeBy" json:"lastChangeBy"` // "patient" or "doctor"
}

// Occupies reports whether the appointment still holds its slot.
func (a *Appointment) Occupies() bool {
	return a.Status == AppointmentRequested || a.Status == AppointmentAccepted
}

// ValidStatusTransition reports whether moving from one status to another is
// allowed. Completed and rejected are terminal; cancellation is allowed from
// any non-terminal status.
func ValidStatusTransition(from, to string) bool {
	switch to {
	case AppointmentAccepted, AppointmentRejected:
		return from == AppointmentRequested
	case AppointmentCancelled:
		return from == AppointmentRequested || from == AppointmentAccepted
	case AppointmentCompleted:
		return from == AppointmentAccepted
	default:
		return false
	}
}

// ReminderPayload is the asynq task body for appointment reminder pushes.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	Target        string `json:"target"` // "patient" or "doctor"
	RecipientID   string `json:"recipientId"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	FireDate      string `json:"fireDate"`
}

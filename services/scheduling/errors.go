package scheduling

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat marks a time string that does not match "HH:MM".
	ErrInvalidFormat = errors.New("invalid time format")
	// ErrOutOfRange marks a time string with hour or minute out of bounds.
	ErrOutOfRange = errors.New("time out of range")
	// ErrStoreUnavailable wraps persistence failures surfaced to callers.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrNotFound marks a missing doctor or appointment.
	ErrNotFound = errors.New("not found")
	// ErrSlotNotOffered marks a booking attempt for a slot the doctor never
	// published on that date.
	ErrSlotNotOffered = errors.New("slot not offered on this date")
	// ErrInvalidTransition marks a disallowed appointment status change.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrForbidden marks an appointment change attempted by someone who is
	// neither its doctor nor its patient.
	ErrForbidden = errors.New("not a party to this appointment")
)

// SlotTakenError is the expected outcome of losing a booking race: the
// chosen slot was occupied between selection and write. Callers should
// re-display fresh availability rather than treat it as a fault.
type SlotTakenError struct {
	DoctorID string
	Date     string
	Slot     string
}

func (e *SlotTakenError) Error() string {
	return fmt.Sprintf("slot %s on %s is already taken for doctor %s", e.Slot, e.Date, e.DoctorID)
}

// IsSlotTaken reports whether err is a lost booking race.
func IsSlotTaken(err error) bool {
	var st *SlotTakenError
	return errors.As(err, &st)
}

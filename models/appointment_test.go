package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatusTransition(t *testing.T) {
	allowed := [][2]string{
		{AppointmentRequested, AppointmentAccepted},
		{AppointmentRequested, AppointmentRejected},
		{AppointmentRequested, AppointmentCancelled},
		{AppointmentAccepted, AppointmentCancelled},
		{AppointmentAccepted, AppointmentCompleted},
	}
	for _, tr := range allowed {
		assert.True(t, ValidStatusTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}

	denied := [][2]string{
		{AppointmentRejected, AppointmentAccepted},
		{AppointmentCancelled, AppointmentAccepted},
		{AppointmentCompleted, AppointmentCancelled},
		{AppointmentRequested, AppointmentCompleted},
		{AppointmentRequested, "archived"},
	}
	for _, tr := range denied {
		assert.False(t, ValidStatusTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}
}

func TestOccupies(t *testing.T) {
	assert.True(t, (&Appointment{Status: AppointmentRequested}).Occupies())
	assert.True(t, (&Appointment{Status: AppointmentAccepted}).Occupies())
	assert.False(t, (&Appointment{Status: AppointmentRejected}).Occupies())
	assert.False(t, (&Appointment{Status: AppointmentCancelled}).Occupies())
	assert.False(t, (&Appointment{Status: AppointmentCompleted}).Occupies())
}

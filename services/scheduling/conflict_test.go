package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medagenda/models"
)

func mustSlotTime(t *testing.T, date time.Time, slot string) time.Time {
	t.Helper()
	ts, err := SlotTime(date, slot)
	require.NoError(t, err)
	return ts
}

func TestSlotTime(t *testing.T) {
	got := mustSlotTime(t, monday, "09:30")
	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 30, got.Minute())
	assert.Equal(t, monday.Day(), got.Day())
}

func TestDayBounds(t *testing.T) {
	start, end := DayBounds(monday.Add(13 * time.Hour))
	assert.Equal(t, 0, start.Hour())
	assert.True(t, end.After(start))
	assert.True(t, end.Before(start.Add(24*time.Hour)))
}

func TestBusySetFromSkipsReleasedStatuses(t *testing.T) {
	at := mustSlotTime(t, monday, "09:30")
	busy := BusySetFrom([]models.Appointment{
		{Status: models.AppointmentRequested, SlotStart: at},
		{Status: models.AppointmentCancelled, SlotStart: mustSlotTime(t, monday, "10:00")},
		{Status: models.AppointmentRejected, SlotStart: mustSlotTime(t, monday, "10:30")},
	})
	assert.True(t, busy.Contains(at))
	assert.False(t, busy.Contains(mustSlotTime(t, monday, "10:00")))
	assert.False(t, busy.Contains(mustSlotTime(t, monday, "10:30")))
}

func TestFilterBookableMarksBusy(t *testing.T) {
	busy := BusySetFrom([]models.Appointment{
		{Status: models.AppointmentAccepted, SlotStart: mustSlotTime(t, monday, "09:30")},
	})
	now := monday.Add(-12 * time.Hour)

	views := FilterBookable([]string{"09:00", "09:30", "10:00"}, monday, busy, now)
	require.Len(t, views, 3)
	assert.True(t, views[0].Available)
	assert.False(t, views[1].Available)
	assert.Equal(t, "busy", views[1].Reason)
	assert.True(t, views[2].Available)
}

func TestFilterBookableMarksPast(t *testing.T) {
	now := mustSlotTime(t, monday, "09:45")
	views := FilterBookable([]string{"09:00", "09:30", "10:00"}, monday, BusySet{}, now)
	require.Len(t, views, 3)
	assert.Equal(t, "past", views[0].Reason)
	assert.Equal(t, "past", views[1].Reason)
	assert.True(t, views[2].Available)
}

func TestFilterBookableSlotStartingNowIsPast(t *testing.T) {
	now := mustSlotTime(t, monday, "10:00")
	views := FilterBookable([]string{"10:00"}, monday, BusySet{}, now)
	require.Len(t, views, 1)
	assert.False(t, views[0].Available)
	assert.Equal(t, "past", views[0].Reason)
}

func TestFilterBookablePastWinsOverBusy(t *testing.T) {
	at := mustSlotTime(t, monday, "09:00")
	busy := BusySetFrom([]models.Appointment{
		{Status: models.AppointmentRequested, SlotStart: at},
	})
	now := mustSlotTime(t, monday, "09:45")

	views := FilterBookable([]string{"09:00"}, monday, busy, now)
	require.Len(t, views, 1)
	assert.Equal(t, "past", views[0].Reason)
	assert.True(t, views[0].Busy)
}

func TestFilterBookableSkipsUnparseable(t *testing.T) {
	now := monday.Add(-time.Hour)
	views := FilterBookable([]string{"09:00", "bad"}, monday, BusySet{}, now)
	assert.Len(t, views, 1)
}

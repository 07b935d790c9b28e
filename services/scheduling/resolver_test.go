package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"medagenda/models"
)

// 2026-03-02 is a Monday, 2026-03-01 a Sunday.
var (
	monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	sunday = time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
)

func TestGenerateMasterSlots(t *testing.T) {
	settings := DefaultWorkSettings()
	got := GenerateMasterSlots(monday, settings)
	// 09:00-12:00 and 14:00-18:00 at 30 minutes: 6 + 8 slots.
	assert.Len(t, got, 14)
	assert.Equal(t, "09:00", got[0])
	assert.Equal(t, "11:30", got[5])
	assert.Equal(t, "14:00", got[6])
	assert.Equal(t, "17:30", got[13])
}

func TestGenerateMasterSlotsNonWorkingDay(t *testing.T) {
	settings := DefaultWorkSettings()
	assert.Empty(t, GenerateMasterSlots(sunday, settings))
}

func TestGenerateMasterSlotsZeroDurationFallsBack(t *testing.T) {
	settings := DefaultWorkSettings()
	settings.SlotDuration = 0
	got := GenerateMasterSlots(monday, settings)
	assert.Len(t, got, 14)
}

func TestResolveDateSlotsOverrideIntersectsMaster(t *testing.T) {
	settings := DefaultWorkSettings()
	override := &models.DateAvailability{
		// 13:00 is outside the master blocks and must vanish.
		Slots: []string{"09:30", "13:00", "14:00"},
	}
	got := ResolveDateSlots(monday, settings, override, nil)
	assert.Equal(t, []string{"09:30", "14:00"}, got)
}

func TestResolveDateSlotsOverrideOnNonWorkingDay(t *testing.T) {
	settings := DefaultWorkSettings()
	override := &models.DateAvailability{Slots: []string{"09:00"}}
	// Sunday has no master slots, so the intersection is empty.
	assert.Empty(t, ResolveDateSlots(sunday, settings, override, nil))
}

func TestResolveDateSlotsLegacyFallback(t *testing.T) {
	settings := DefaultWorkSettings()
	legacy := &models.WeekSchedule{
		SlotDuration: 60,
		Days: map[string][]models.TimeRange{
			"1": {{Start: "10:00", End: "12:00"}},
		},
	}
	got := ResolveDateSlots(monday, settings, nil, legacy)
	assert.Equal(t, []string{"10:00", "11:00"}, got)
}

func TestResolveDateSlotsNothingConfigured(t *testing.T) {
	settings := DefaultWorkSettings()
	assert.Empty(t, ResolveDateSlots(monday, settings, nil, nil))
}

func TestDefaultWorkSettingsIsFreshValue(t *testing.T) {
	a := DefaultWorkSettings()
	b := DefaultWorkSettings()
	a.WorkingDays[6] = true
	assert.False(t, b.WorkingDays[6])
}

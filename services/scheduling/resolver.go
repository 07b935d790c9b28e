package scheduling

import (
	"strconv"
	"time"

	"medagenda/models"
)

// DefaultSlotDuration applies when neither settings nor a stored document
// carry one.
const DefaultSlotDuration = 30

// DefaultWorkSettings returns a fresh default configuration: 30-minute
// slots, Monday through Friday, morning and afternoon blocks. A new value
// is built on every call so callers can never share mutable state.
func DefaultWorkSettings() models.WorkSettings {
	return models.WorkSettings{
		SlotDuration: DefaultSlotDuration,
		WorkingDays: map[int]bool{
			0: false, 1: true, 2: true, 3: true, 4: true, 5: true, 6: false,
		},
		Blocks: []models.TimeRange{
			{Start: "09:00", End: "12:00"},
			{Start: "14:00", End: "18:00"},
		},
	}
}

// GenerateMasterSlots produces the full slot template a doctor's recurring
// settings imply for a date, ignoring any per-date override. Non-working
// weekdays yield nothing regardless of blocks.
func GenerateMasterSlots(date time.Time, settings models.WorkSettings) []string {
	if !settings.WorkingDays[int(date.Weekday())] {
		return nil
	}
	duration := settings.SlotDuration
	if duration <= 0 {
		duration = DefaultSlotDuration
	}
	var all []string
	for _, b := range settings.Blocks {
		all = append(all, SliceRangeStrings(b.Start, b.End, duration)...)
	}
	return DedupSortSlots(all)
}

// ResolveDateSlots computes the slots actually offered on a date.
//
// With an override present, the result is the override's slots intersected
// with the current master template, which silently discards selections made
// under settings the doctor has since changed. Without an override the
// legacy per-weekday schedule, when present, is expanded through the
// slicer; otherwise the date offers nothing — a date only becomes bookable
// once the doctor has confirmed slots for it.
//
// Output ordering is deterministic for identical inputs.
func ResolveDateSlots(date time.Time, settings models.WorkSettings, override *models.DateAvailability, legacy *models.WeekSchedule) []string {
	if override != nil {
		master := GenerateMasterSlots(date, settings)
		chosen := SlotsFromDocument(override, settings.SlotDuration)
		return intersectSlots(master, chosen)
	}
	if legacy != nil {
		return legacyScheduleSlots(date, legacy)
	}
	return nil
}

// intersectSlots keeps master entries also present in chosen, preserving
// master order. Both inputs are canonical "HH:MM" labels.
func intersectSlots(master, chosen []string) []string {
	if len(master) == 0 || len(chosen) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(chosen))
	for _, s := range chosen {
		set[s] = struct{}{}
	}
	var out []string
	for _, s := range master {
		if _, ok := set[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

// legacyScheduleSlots expands the pre-override per-weekday schedule into
// fixed-duration slots for the date's weekday.
func legacyScheduleSlots(date time.Time, sched *models.WeekSchedule) []string {
	ranges := sched.Days[strconv.Itoa(int(date.Weekday()))]
	if len(ranges) == 0 {
		return nil
	}
	duration := sched.SlotDuration
	if duration <= 0 {
		duration = DefaultSlotDuration
	}
	var all []string
	for _, r := range ranges {
		all = append(all, SliceRangeStrings(r.Start, r.End, duration)...)
	}
	return DedupSortSlots(all)
}

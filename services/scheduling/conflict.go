package scheduling

import (
	"time"

	"medagenda/models"
)

// DateKeyLayout is the calendar-date document key: local date, no time or
// zone component.
const DateKeyLayout = "2006-01-02"

// SlotTime anchors a "HH:MM" slot onto a calendar date in the date's
// location, yielding the slot's absolute start instant.
func SlotTime(date time.Time, slot string) (time.Time, error) {
	m, err := ParseTimeOfDay(slot)
	if err != nil {
		return time.Time{}, err
	}
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return day.Add(time.Duration(m) * time.Minute), nil
}

// DayBounds returns the inclusive [00:00:00, 23:59:59.999999999] window of
// the date in its location, for busy-set queries.
func DayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}

// BusySet is the collection of slot-start instants already occupied on a
// date, keyed by unix time.
type BusySet map[int64]struct{}

// BusySetFrom collects the start instants of appointments that still occupy
// their slot. Rejected and cancelled appointments release theirs.
func BusySetFrom(appointments []models.Appointment) BusySet {
	set := make(BusySet, len(appointments))
	for i := range appointments {
		if appointments[i].Occupies() {
			set[appointments[i].SlotStart.Unix()] = struct{}{}
		}
	}
	return set
}

// Contains reports whether the instant is occupied.
func (b BusySet) Contains(t time.Time) bool {
	_, ok := b[t.Unix()]
	return ok
}

// FilterBookable labels each slot of a date: bookable iff its start is
// strictly after now and not occupied. For display, "past" takes precedence
// over "busy" on slots that are both. Slots that fail to anchor onto the
// date are skipped.
func FilterBookable(slots []string, date time.Time, busy BusySet, now time.Time) []models.SlotView {
	out := make([]models.SlotView, 0, len(slots))
	for _, s := range slots {
		start, err := SlotTime(date, s)
		if err != nil {
			continue
		}
		view := models.SlotView{Slot: s, Available: true, Busy: busy.Contains(start)}
		switch {
		case !start.After(now):
			view.Available = false
			view.Reason = "past"
		case view.Busy:
			view.Available = false
			view.Reason = "busy"
		}
		out = append(out, view)
	}
	return out
}

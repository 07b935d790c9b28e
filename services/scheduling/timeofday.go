package scheduling

import (
	"fmt"
	"regexp"
	"strconv"
)

// TimeOfDay is a minute-of-day value in [0, 1440]. 1440 marks the end-of-day
// boundary and only appears as a range end.
type TimeOfDay = int

// MinutesPerDay is the end-of-day boundary.
const MinutesPerDay = 24 * 60

var hhmmPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// ParseTimeOfDay parses a strict "H:MM" or "HH:MM" string into minutes from
// midnight. Pattern mismatches return ErrInvalidFormat; well-formed strings
// with hour or minute outside their valid bounds return ErrOutOfRange.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	m := hhmmPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	h, _ := strconv.Atoi(m[1])
	mi, _ := strconv.Atoi(m[2])
	if h < 0 || h > 23 || mi < 0 || mi > 59 {
		return 0, fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}
	return h*60 + mi, nil
}

// FormatTimeOfDay renders minutes from midnight as "HH:MM". This is a
// display helper, not a validator: out-of-range values are clamped to
// [0, 1440] before formatting.
func FormatTimeOfDay(t TimeOfDay) string {
	if t < 0 {
		t = 0
	}
	if t > MinutesPerDay {
		t = MinutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", t/60, t%60)
}

// ParseRangeEnd parses a range end. Unlike slot starts, a range may end at
// the "24:00" day boundary.
func ParseRangeEnd(s string) (TimeOfDay, error) {
	if s == "24:00" {
		return MinutesPerDay, nil
	}
	return ParseTimeOfDay(s)
}

// AddMinutes returns t+m with no clamping. Callers validate the result.
func AddMinutes(t TimeOfDay, m int) TimeOfDay {
	return t + m
}

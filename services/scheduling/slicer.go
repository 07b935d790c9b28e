package scheduling

// MinSlotDuration is the floor applied to every slot duration. Durations
// below it come from bad input and would explode the slot count.
const MinSlotDuration = 5

// SliceRange splits [start, end) into fixed-duration slot start points:
// start, start+d, start+2d, ... for as long as the whole slot fits before
// end. A trailing partial slot is never emitted. Inverted or empty ranges
// and durations below MinSlotDuration yield an empty result, never an error.
func SliceRange(start, end TimeOfDay, duration int) []TimeOfDay {
	if duration < MinSlotDuration || end <= start {
		return nil
	}
	var out []TimeOfDay
	for t := start; t+duration <= end; t += duration {
		out = append(out, t)
	}
	return out
}

// SliceRangeStrings is SliceRange over "HH:MM" endpoints, returning "HH:MM"
// start times. Endpoints that fail to parse yield an empty result; callers
// that must distinguish bad input from an empty range parse first.
func SliceRangeStrings(start, end string, duration int) []string {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return nil
	}
	e, err := ParseRangeEnd(end)
	if err != nil {
		return nil
	}
	points := SliceRange(s, e, duration)
	out := make([]string, 0, len(points))
	for _, p := range points {
		out = append(out, FormatTimeOfDay(p))
	}
	return out
}

package scheduling

import (
	"sort"

	"medagenda/models"
)

// DedupSortSlots sorts "HH:MM" start times chronologically and drops exact
// duplicates. Strings that fail to parse are dropped.
func DedupSortSlots(slots []string) []string {
	type parsed struct {
		label string
		min   TimeOfDay
	}
	items := make([]parsed, 0, len(slots))
	for _, s := range slots {
		m, err := ParseTimeOfDay(s)
		if err != nil {
			continue
		}
		items = append(items, parsed{label: s, min: m})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].min < items[j].min })

	out := make([]string, 0, len(items))
	var last TimeOfDay = -1
	for _, it := range items {
		if it.min == last {
			continue
		}
		// Re-format so "9:00" and "09:00" collapse to one canonical label.
		out = append(out, FormatTimeOfDay(it.min))
		last = it.min
	}
	return out
}

// DedupSortRanges sorts ranges by start and removes exact (start, end)
// duplicates. No contiguity is forced; this is the master-template mode.
func DedupSortRanges(ranges []models.TimeRange) []models.TimeRange {
	type parsed struct {
		r          models.TimeRange
		start, end TimeOfDay
	}
	items := make([]parsed, 0, len(ranges))
	for _, r := range ranges {
		s, err := ParseTimeOfDay(r.Start)
		if err != nil {
			continue
		}
		e, err := ParseRangeEnd(r.End)
		if err != nil {
			continue
		}
		items = append(items, parsed{r: r, start: s, end: e})
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].start != items[j].start {
			return items[i].start < items[j].start
		}
		return items[i].end < items[j].end
	})

	out := make([]models.TimeRange, 0, len(items))
	for i, it := range items {
		if i > 0 && it.start == items[i-1].start && it.end == items[i-1].end {
			continue
		}
		out = append(out, it.r)
	}
	return out
}

// ChainRanges normalizes a user-edited block list into a gapless,
// non-overlapping sequence: sort by start, repair inverted ranges to
// start+duration, then force each range to begin where the previous one
// ended and to span at least one slot duration, clamping everything to the
// day boundary. Ranges pushed past midnight are dropped. The result is a
// fixed point: chaining an already-chained sequence returns it unchanged.
func ChainRanges(ranges []models.TimeRange, duration int) []models.TimeRange {
	if duration < MinSlotDuration {
		duration = MinSlotDuration
	}

	type parsed struct {
		start, end TimeOfDay
	}
	items := make([]parsed, 0, len(ranges))
	for _, r := range ranges {
		s, err := ParseTimeOfDay(r.Start)
		if err != nil {
			continue
		}
		e, err := ParseRangeEnd(r.End)
		if err != nil {
			continue
		}
		if e <= s {
			e = s + duration
		}
		items = append(items, parsed{start: s, end: e})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].start < items[j].start })

	out := make([]models.TimeRange, 0, len(items))
	prevEnd := -1
	for _, it := range items {
		start, end := it.start, it.end
		if prevEnd >= 0 {
			// Shift the whole range so it starts where the previous ended.
			end += prevEnd - start
			start = prevEnd
		}
		if end < start+duration {
			end = start + duration
		}
		if start >= MinutesPerDay {
			break
		}
		if end > MinutesPerDay {
			end = MinutesPerDay
		}
		if end <= start {
			continue
		}
		out = append(out, models.TimeRange{
			Start: FormatTimeOfDay(start),
			End:   FormatTimeOfDay(end),
		})
		prevEnd = end
	}
	return out
}

// SlotsFromDocument resolves the two persisted override shapes to one
// canonical slot list. Current documents carry explicit slots, used as-is
// after normalization; legacy documents carry only ranges, which are sliced
// at the stored duration (or defaultDuration when absent) and deduplicated.
// This is the only place that may branch on the document shape.
func SlotsFromDocument(doc *models.DateAvailability, defaultDuration int) []string {
	if doc == nil {
		return nil
	}
	if doc.HasExplicitSlots() {
		return DedupSortSlots(doc.Slots)
	}
	duration := doc.SlotDuration
	if duration <= 0 {
		duration = defaultDuration
	}
	var all []string
	for _, r := range doc.Ranges {
		all = append(all, SliceRangeStrings(r.Start, r.End, duration)...)
	}
	return DedupSortSlots(all)
}

package models

// DateAvailability is the per-date override a doctor publishes from the
// calendar: the explicit slots patients may book on that date. Keyed by
// (doctorId, date) with date as a plain "YYYY-MM-DD" string.
//
// Two persisted shapes exist. Current documents carry Slots; documents
// written before the explicit-slot model carry only Ranges and must be
// expanded at read time. Never branch on the shape outside the scheduling
// package's translation function.
type DateAvailability struct {
	DoctorID      string      `bson:"doctorId" json:"doctorId"`
	Date          string      `bson:"date" json:"date"` // "YYYY-MM-DD"
	Slots         []string    `bson:"slots,omitempty" json:"slots,omitempty"`   // "HH:MM" start times
	Ranges        []TimeRange `bson:"ranges,omitempty" json:"ranges,omitempty"` // legacy shape
	SlotDuration  int         `bson:"slotDuration,omitempty" json:"slotDuration,omitempty"`
	GeneratedFrom []TimeRange `bson:"generatedFrom,omitempty" json:"generatedFrom,omitempty"`
	UpdatedAt     int64       `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// HasExplicitSlots reports whether the document is in the current shape.
func (a *DateAvailability) HasExplicitSlots() bool {
	return len(a.Slots) > 0
}

// SlotView is one entry of the bookable-slot listing shown to patients.
// Reason is the display label; Busy stays set even when "past" wins it.
type SlotView struct {
	Slot      string `json:"slot"` // "HH:MM"
	Available bool   `json:"available"`
	Busy      bool   `json:"busy"`
	Reason    string `json:"reason,omitempty"` // "past" or "busy" when unavailable
}

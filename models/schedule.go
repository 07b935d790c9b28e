package models

// TimeRange is a contiguous block of a doctor's day, expressed as "HH:MM"
// wall-clock strings the way doctors author them in the settings editor.
type TimeRange struct {
	Start string `bson:"start" json:"start"` // e.g. "09:00"
	End   string `bson:"end" json:"end"`     // e.g. "12:00"
}

// WorkSettings is a doctor's recurring weekly configuration. One live
// document per doctor, replaced wholesale on every save.
type WorkSettings struct {
	DoctorID     string       `bson:"doctorId" json:"doctorId"`
	SlotDuration int          `bson:"slotDuration" json:"slotDuration"` // minutes, floor of 5 enforced on save
	WorkingDays  map[int]bool `bson:"workingDays" json:"workingDays"`   // 0=Sunday .. 6=Saturday
	Blocks       []TimeRange  `bson:"blocks" json:"blocks"`
	UpdatedAt    int64        `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"` // unix seconds
}

// WeekSchedule is the legacy per-weekday schedule kept on the doctor
// profile document. It predates the explicit per-date override model and is
// only consulted when a date has no override document.
type WeekSchedule struct {
	Timezone     string                 `bson:"timezone,omitempty" json:"timezone,omitempty"`
	SlotDuration int                    `bson:"slotDuration" json:"slotDuration"`
	Days         map[string][]TimeRange `bson:"days" json:"days"` // key "0".."6", 0=Sunday
}

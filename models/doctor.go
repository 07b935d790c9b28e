package models

// GeoPoint is a WGS84 coordinate pair.
type GeoPoint struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// Doctor is the slice of the users collection the scheduling and search
// services read. Profile editing lives elsewhere; this model is read-only
// here.
type Doctor struct {
	ID                 string        `bson:"id" json:"id"`
	Name               string        `bson:"name" json:"name"`
	LastName           string        `bson:"lastName,omitempty" json:"lastName,omitempty"`
	Role               string        `bson:"role" json:"role"` // "doctor" for search candidates
	Profession         string        `bson:"profession,omitempty" json:"profession,omitempty"`
	Verified           bool          `bson:"verified" json:"verified"`
	AcceptsNewPatients bool          `bson:"acceptsNewPatients" json:"acceptsNewPatients"`
	Location           *GeoPoint     `bson:"location,omitempty" json:"location,omitempty"`
	ClinicAddress      string        `bson:"clinicAddress,omitempty" json:"clinicAddress,omitempty"`
	Schedule           *WeekSchedule `bson:"schedule,omitempty" json:"schedule,omitempty"` // legacy fallback
	FCMToken           string        `bson:"fcmToken,omitempty" json:"-"`
}

// RankedDoctor is a search hit annotated with its distance from the query
// center.
type RankedDoctor struct {
	Doctor
	DistanceKm float64 `json:"distanceKm"`
}

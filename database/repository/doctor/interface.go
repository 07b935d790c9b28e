package doctorRepo

import (
	"context"

	"medagenda/models"
)

// SearchFilter narrows the nearby-doctor candidate query. MinLat/MaxLat come
// from the bounding-box pre-filter; exact distance cuts happen in the search
// service.
type SearchFilter struct {
	MinLat       float64
	MaxLat       float64
	VerifiedOnly bool
	Profession   string
	HardCap      int64 // upper bound on candidates pulled from the store
}

// DoctorRepository reads doctor profiles. Profile mutation belongs to the
// surrounding application and is not exposed here.
type DoctorRepository interface {
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	// FindCandidates returns doctor documents whose latitude falls inside
	// the filter's band, ordered by latitude ascending.
	FindCandidates(ctx context.Context, filter SearchFilter) ([]models.Doctor, error)
	// GetFCMToken returns the push token of any user record, or "" when the
	// user has not registered a device.
	GetFCMToken(ctx context.Context, userID string) (string, error)
}

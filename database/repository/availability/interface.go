package availabilityRepo

import (
	"context"

	"medagenda/models"
)

// AvailabilityRepository persists a doctor's recurring work settings and the
// per-date override documents. Lookups return (nil, nil) when no document
// exists.
type AvailabilityRepository interface {
	GetWorkSettings(ctx context.Context, doctorID string) (*models.WorkSettings, error)
	SaveWorkSettings(ctx context.Context, settings *models.WorkSettings) error

	GetDateAvailability(ctx context.Context, doctorID, date string) (*models.DateAvailability, error)
	SaveDateAvailability(ctx context.Context, doc *models.DateAvailability) error
	DeleteDateAvailability(ctx context.Context, doctorID, date string) error
	// ListDateAvailabilities returns override documents with date in
	// [from, to], both "YYYY-MM-DD" inclusive.
	ListDateAvailabilities(ctx context.Context, doctorID, from, to string) ([]models.DateAvailability, error)
}

package search

import (
	"context"
	"errors"

	"medagenda/models"
)

// ErrInvalidCenter marks a nearby query whose center is missing or not a
// finite coordinate pair.
var ErrInvalidCenter = errors.New("invalid search center")

// Query describes a nearby-doctor search.
type Query struct {
	Center       models.GeoPoint
	RadiusKm     float64
	Profession   string
	VerifiedOnly bool
	Limit        int
}

// SearchService finds and ranks doctors around a point.
type SearchService interface {
	FindNearbyDoctors(ctx context.Context, q Query) ([]models.RankedDoctor, error)
}

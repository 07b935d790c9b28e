package search

import (
	"math"
	"sort"

	"medagenda/models"
)

const earthRadiusKm = 6371

// HaversineKm is the great-circle distance between two points in km.
func HaversineKm(a, b models.GeoPoint) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(b.Latitude - a.Latitude)
	dLon := toRad(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Latitude))*math.Cos(toRad(b.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// Bounds is a latitude/longitude rectangle.
type Bounds struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

// BoundingBox returns a rectangle guaranteed to contain every point within
// radiusKm of center. Near the poles or at large radii it over-covers; it is
// a pre-filter, never an exact one.
func BoundingBox(center models.GeoPoint, radiusKm float64) Bounds {
	latDelta := radiusKm / 110.574 // km per degree of latitude
	lonDelta := radiusKm / (111.320 * math.Cos(center.Latitude*math.Pi/180))
	if lonDelta < 0 {
		lonDelta = -lonDelta
	}
	return Bounds{
		MinLat: center.Latitude - latDelta,
		MaxLat: center.Latitude + latDelta,
		MinLon: center.Longitude - lonDelta,
		MaxLon: center.Longitude + lonDelta,
	}
}

// RankByDistance applies the bounding-box pre-filter, the exact haversine
// radius cut, and an ascending stable sort, then truncates to limit.
// Candidates without a location are skipped. Equal distances keep their
// input order.
func RankByDistance(center models.GeoPoint, radiusKm float64, candidates []models.Doctor, limit int) []models.RankedDoctor {
	if radiusKm <= 0 {
		return nil
	}
	box := BoundingBox(center, radiusKm)

	var ranked []models.RankedDoctor
	for _, d := range candidates {
		if d.Location == nil {
			continue
		}
		loc := *d.Location
		if loc.Latitude < box.MinLat || loc.Latitude > box.MaxLat {
			continue
		}
		if loc.Longitude < box.MinLon || loc.Longitude > box.MaxLon {
			continue
		}
		km := HaversineKm(center, loc)
		if km > radiusKm {
			continue
		}
		ranked = append(ranked, models.RankedDoctor{Doctor: d, DistanceKm: km})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

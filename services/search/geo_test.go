package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medagenda/models"
)

var nairobi = models.GeoPoint{Latitude: -1.2921, Longitude: 36.8219}

func TestHaversineKmZeroDistance(t *testing.T) {
	assert.Zero(t, HaversineKm(nairobi, nairobi))
}

func TestHaversineKmSymmetric(t *testing.T) {
	mombasa := models.GeoPoint{Latitude: -4.0435, Longitude: 39.6682}
	assert.InDelta(t, HaversineKm(nairobi, mombasa), HaversineKm(mombasa, nairobi), 1e-9)
}

func TestHaversineKmKnownDistance(t *testing.T) {
	// Nairobi to Mombasa is roughly 440 km.
	mombasa := models.GeoPoint{Latitude: -4.0435, Longitude: 39.6682}
	km := HaversineKm(nairobi, mombasa)
	assert.InDelta(t, 440, km, 10)
}

func TestBoundingBoxContainsRadius(t *testing.T) {
	radius := 25.0
	box := BoundingBox(nairobi, radius)

	// Points due north, south, east and west at the radius edge must all
	// fall inside the box.
	probes := []models.GeoPoint{
		{Latitude: nairobi.Latitude + radius/110.574, Longitude: nairobi.Longitude},
		{Latitude: nairobi.Latitude - radius/110.574, Longitude: nairobi.Longitude},
	}
	for _, p := range probes {
		assert.GreaterOrEqual(t, p.Latitude, box.MinLat)
		assert.LessOrEqual(t, p.Latitude, box.MaxLat)
	}
	assert.Less(t, box.MinLon, nairobi.Longitude)
	assert.Greater(t, box.MaxLon, nairobi.Longitude)
	assert.InDelta(t, box.MaxLon-nairobi.Longitude, nairobi.Longitude-box.MinLon, 1e-9)
}

func TestRankByDistanceSortsAscending(t *testing.T) {
	candidates := []models.Doctor{
		doctorAt("far", nairobi.Latitude+0.05, nairobi.Longitude),
		doctorAt("near", nairobi.Latitude+0.01, nairobi.Longitude),
		doctorAt("mid", nairobi.Latitude+0.03, nairobi.Longitude),
	}
	ranked := RankByDistance(nairobi, 50, candidates, 0)
	require.Len(t, ranked, 3)
	assert.Equal(t, "near", ranked[0].ID)
	assert.Equal(t, "mid", ranked[1].ID)
	assert.Equal(t, "far", ranked[2].ID)
	assert.True(t, ranked[0].DistanceKm <= ranked[1].DistanceKm)
}

func TestRankByDistanceTruncatesToLimit(t *testing.T) {
	var candidates []models.Doctor
	for i := 0; i < 10; i++ {
		candidates = append(candidates,
			doctorAt(fmt.Sprintf("d%d", i), nairobi.Latitude+float64(i)*0.005, nairobi.Longitude))
	}
	ranked := RankByDistance(nairobi, 100, candidates, 3)
	require.Len(t, ranked, 3)
	assert.Equal(t, "d0", ranked[0].ID)
	assert.Equal(t, "d1", ranked[1].ID)
	assert.Equal(t, "d2", ranked[2].ID)
}

func TestRankByDistanceCutsAtRadius(t *testing.T) {
	candidates := []models.Doctor{
		doctorAt("inside", nairobi.Latitude+0.01, nairobi.Longitude),
		doctorAt("outside", nairobi.Latitude+2, nairobi.Longitude),
	}
	ranked := RankByDistance(nairobi, 10, candidates, 0)
	require.Len(t, ranked, 1)
	assert.Equal(t, "inside", ranked[0].ID)
}

func TestRankByDistanceSkipsMissingLocation(t *testing.T) {
	candidates := []models.Doctor{
		{ID: "nowhere"},
		doctorAt("here", nairobi.Latitude, nairobi.Longitude),
	}
	ranked := RankByDistance(nairobi, 10, candidates, 0)
	require.Len(t, ranked, 1)
	assert.Equal(t, "here", ranked[0].ID)
}

func TestRankByDistanceZeroRadius(t *testing.T) {
	candidates := []models.Doctor{doctorAt("a", nairobi.Latitude, nairobi.Longitude)}
	assert.Empty(t, RankByDistance(nairobi, 0, candidates, 0))
}

func doctorAt(id string, lat, lng float64) models.Doctor {
	return models.Doctor{
		ID:       id,
		Location: &models.GeoPoint{Latitude: lat, Longitude: lng},
	}
}

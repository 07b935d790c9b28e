package search

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	doctorRepo "medagenda/database/repository/doctor"
	"medagenda/models"
)

type stubDoctorRepo struct {
	candidates []models.Doctor
	lastFilter doctorRepo.SearchFilter
}

func (r *stubDoctorRepo) GetByID(_ context.Context, _ string) (*models.Doctor, error) {
	return nil, nil
}

func (r *stubDoctorRepo) FindCandidates(_ context.Context, f doctorRepo.SearchFilter) ([]models.Doctor, error) {
	r.lastFilter = f
	return r.candidates, nil
}

func (r *stubDoctorRepo) GetFCMToken(_ context.Context, _ string) (string, error) {
	return "", nil
}

func TestFindNearbyDoctorsInvalidCenter(t *testing.T) {
	svc := &DefaultSearchService{Doctors: &stubDoctorRepo{}}
	for _, center := range []models.GeoPoint{
		{Latitude: math.NaN(), Longitude: 36.8},
		{Latitude: -1.29, Longitude: math.Inf(1)},
	} {
		_, err := svc.FindNearbyDoctors(context.Background(), Query{Center: center, RadiusKm: 10})
		assert.ErrorIs(t, err, ErrInvalidCenter)
	}
}

func TestFindNearbyDoctorsZeroRadiusIsEmpty(t *testing.T) {
	svc := &DefaultSearchService{Doctors: &stubDoctorRepo{}}
	got, err := svc.FindNearbyDoctors(context.Background(), Query{Center: nairobi})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindNearbyDoctorsRanksAndLimits(t *testing.T) {
	repo := &stubDoctorRepo{
		candidates: []models.Doctor{
			doctorAt("far", nairobi.Latitude+0.05, nairobi.Longitude),
			doctorAt("near", nairobi.Latitude+0.01, nairobi.Longitude),
		},
	}
	svc := &DefaultSearchService{Doctors: repo}

	got, err := svc.FindNearbyDoctors(context.Background(), Query{
		Center:   nairobi,
		RadiusKm: 50,
		Limit:    1,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "near", got[0].ID)
	assert.Greater(t, got[0].DistanceKm, 0.0)
}

func TestFindNearbyDoctorsHardCapFloor(t *testing.T) {
	repo := &stubDoctorRepo{}
	svc := &DefaultSearchService{Doctors: repo}

	_, err := svc.FindNearbyDoctors(context.Background(), Query{
		Center:   nairobi,
		RadiusKm: 10,
		Limit:    3,
	})
	require.NoError(t, err)
	// limit*5 is below the floor, so the cap stays at 100.
	assert.EqualValues(t, 100, repo.lastFilter.HardCap)

	_, err = svc.FindNearbyDoctors(context.Background(), Query{
		Center:   nairobi,
		RadiusKm: 10,
		Limit:    40,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 200, repo.lastFilter.HardCap)
}

func TestFindNearbyDoctorsPassesFilter(t *testing.T) {
	repo := &stubDoctorRepo{}
	svc := &DefaultSearchService{Doctors: repo}

	_, err := svc.FindNearbyDoctors(context.Background(), Query{
		Center:       nairobi,
		RadiusKm:     25,
		Profession:   "cardiology",
		VerifiedOnly: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "cardiology", repo.lastFilter.Profession)
	assert.True(t, repo.lastFilter.VerifiedOnly)
	assert.Less(t, repo.lastFilter.MinLat, nairobi.Latitude)
	assert.Greater(t, repo.lastFilter.MaxLat, nairobi.Latitude)
}

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	doctorRepo "medagenda/database/repository/doctor"
	"medagenda/models"
	"medagenda/utils"
)

const (
	defaultRadiusKm = 50.0
	defaultLimit    = 50
	cacheTTL        = 5 * time.Minute
)

// DefaultSearchService implements SearchService against the doctor
// repository, with a short-lived Redis cache in front of it.
type DefaultSearchService struct {
	Doctors     doctorRepo.DoctorRepository
	CacheClient *redis.Client
}

// FindNearbyDoctors validates the query, pulls a latitude-banded candidate
// set from the store and ranks it by exact haversine distance.
func (s *DefaultSearchService) FindNearbyDoctors(ctx context.Context, q Query) ([]models.RankedDoctor, error) {
	logger := utils.GetLogger()

	if !isFinite(q.Center.Latitude) || !isFinite(q.Center.Longitude) {
		return nil, fmt.Errorf("%w: (%v, %v)", ErrInvalidCenter, q.Center.Latitude, q.Center.Longitude)
	}
	if q.RadiusKm <= 0 {
		return []models.RankedDoctor{}, nil
	}
	if q.Limit <= 0 {
		q.Limit = defaultLimit
	}

	cacheKey := s.cacheKey(q)
	if s.CacheClient != nil {
		if cached, err := s.CacheClient.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			var hit []models.RankedDoctor
			if err := json.Unmarshal([]byte(cached), &hit); err == nil {
				return hit, nil
			}
			// Corrupt cache entries fall through to recomputation.
		}
	}

	box := BoundingBox(q.Center, q.RadiusKm)
	hardCap := int64(q.Limit * 5)
	if hardCap < 100 {
		hardCap = 100
	}
	candidates, err := s.Doctors.FindCandidates(ctx, doctorRepo.SearchFilter{
		MinLat:       box.MinLat,
		MaxLat:       box.MaxLat,
		VerifiedOnly: q.VerifiedOnly,
		Profession:   q.Profession,
		HardCap:      hardCap,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve doctor candidates: %w", err)
	}

	ranked := RankByDistance(q.Center, q.RadiusKm, candidates, q.Limit)
	if ranked == nil {
		ranked = []models.RankedDoctor{}
	}

	if s.CacheClient != nil {
		if data, err := json.Marshal(ranked); err == nil {
			if err := s.CacheClient.Set(ctx, cacheKey, data, cacheTTL).Err(); err != nil {
				logger.Debug("nearby cache write failed", zap.Error(err))
			}
		}
	}
	return ranked, nil
}

func (s *DefaultSearchService) cacheKey(q Query) string {
	return fmt.Sprintf("nearby:%.4f:%.4f:%.1f:%s:%t:%d",
		q.Center.Latitude, q.Center.Longitude, q.RadiusKm, q.Profession, q.VerifiedOnly, q.Limit)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

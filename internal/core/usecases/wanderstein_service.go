package usecases

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/trailmarks-io/trailmarks/internal/core/domain"
	"github.com/trailmarks-io/trailmarks/internal/core/ports"
)

// Default search center (Bochum) used when the caller does not provide
// both latitude and longitude.
const (
	DefaultCenterLat = 51.4818
	DefaultCenterLon = 7.2162

	// Default radius in km: 50 when the caller gave an explicit center,
	// 100 when the default center is used. The coupling is to how the
	// center was derived, not to its value; the frontend depends on it.
	DefaultRadiusKm         = 100.0
	DefaultExplicitRadiusKm = 50.0

	recentLimit = 5
)

// NearbyQuery carries the raw, optional nearby parameters. Nil means
// the parameter was not supplied.
type NearbyQuery struct {
	Latitude  *float64
	Longitude *float64
	RadiusKm  *float64
}

// Resolve derives the effective center and radius. The center falls
// back to Bochum unless both latitude and longitude were supplied;
// giving only one of the two is treated as "not provided".
func (q NearbyQuery) Resolve() (center domain.GeoCoordinate, radiusKm float64, explicit bool) {
	explicit = q.Latitude != nil && q.Longitude != nil
	if explicit {
		center = domain.GeoCoordinate{Latitude: *q.Latitude, Longitude: *q.Longitude}
		radiusKm = DefaultExplicitRadiusKm
	} else {
		center = domain.GeoCoordinate{Latitude: DefaultCenterLat, Longitude: DefaultCenterLon}
		radiusKm = DefaultRadiusKm
	}
	if q.RadiusKm != nil {
		// Taken verbatim; zero or negative simply yields an empty set.
		radiusKm = *q.RadiusKm
	}
	return center, radiusKm, explicit
}

// WandersteinService handles catalog reads.
type WandersteinService struct {
	stones ports.WandersteinRepository
	cache  ports.CacheService
}

// NewWandersteinService creates a new WandersteinService.
func NewWandersteinService(stones ports.WandersteinRepository, cache ports.CacheService) *WandersteinService {
	return &WandersteinService{stones: stones, cache: cache}
}

// Recent returns the 5 most recently added stones, newest first.
func (s *WandersteinService) Recent(ctx context.Context) ([]domain.Wanderstein, error) {
	return s.stones.Recent(ctx, recentLimit)
}

// All returns every stone, newest first.
func (s *WandersteinService) All(ctx context.Context) ([]domain.Wanderstein, error) {
	return s.stones.All(ctx)
}

// GetByUniqueID returns a single stone by its external identifier,
// matched case-sensitively. Returns domain.ErrNotFound when absent.
func (s *WandersteinService) GetByUniqueID(ctx context.Context, uniqueID string) (*domain.Wanderstein, error) {
	cacheKey := "stones:uid:" + uniqueID
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey); err == nil {
			var stone domain.Wanderstein
			if err := json.Unmarshal(data, &stone); err == nil {
				return &stone, nil
			}
		}
	}

	stone, err := s.stones.GetByUniqueID(ctx, uniqueID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(stone); err == nil {
			_ = s.cache.Set(ctx, cacheKey, data, 600)
		}
	}

	return stone, nil
}

// FindNearby returns stones within the resolved radius of the resolved
// center, newest first. Stones without a coordinate never match.
//
// Explicit input coordinates are validated against WGS 84 bounds and
// rejected with domain.ErrInvalidCoordinates; the default center is
// always valid and skips the check.
func (s *WandersteinService) FindNearby(ctx context.Context, q NearbyQuery) ([]domain.Wanderstein, error) {
	center, radiusKm, explicit := q.Resolve()
	if explicit && !center.IsValid() {
		return nil, fmt.Errorf("%w: (%g, %g)", domain.ErrInvalidCoordinates, center.Latitude, center.Longitude)
	}

	cacheKey := fmt.Sprintf("stones:nearby:%.4f:%.4f:%.1f", center.Latitude, center.Longitude, radiusKm)
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey); err == nil {
			var stones []domain.Wanderstein
			if err := json.Unmarshal(data, &stones); err == nil {
				return stones, nil
			}
		}
	}

	stones, err := s.stones.FindNearby(ctx, center, radiusKm*1000)
	if err != nil {
		return nil, err
	}

	// Stones rarely change; 5 minutes is plenty.
	if s.cache != nil {
		if data, err := json.Marshal(stones); err == nil {
			_ = s.cache.Set(ctx, cacheKey, data, 300)
		}
	}

	return stones, nil
}

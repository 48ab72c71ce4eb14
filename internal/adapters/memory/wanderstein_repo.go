package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/trailmarks-io/trailmarks/internal/core/domain"
	"github.com/trailmarks-io/trailmarks/internal/pkg/geospatial"
)

// WandersteinRepo is an in-process ports.WandersteinRepository that
// filters with the Haversine helper instead of a database. It loads the
// whole catalog per query, which is fine for small catalogs and tests;
// production deployments use the postgres adapter.
type WandersteinRepo struct {
	mu     sync.RWMutex
	stones map[string]domain.Wanderstein // by unique_id
	nextID uint
}

// NewWandersteinRepo creates an empty in-memory repository.
func NewWandersteinRepo() *WandersteinRepo {
	return &WandersteinRepo{stones: make(map[string]domain.Wanderstein), nextID: 1}
}

// Upsert inserts or updates a stone keyed by its unique identifier.
func (r *WandersteinRepo) Upsert(ctx context.Context, s *domain.Wanderstein) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *s
	if existing, ok := r.stones[s.UniqueID]; ok {
		stored.ID = existing.ID
	} else {
		stored.ID = r.nextID
		r.nextID++
	}
	if s.Coordinates != nil {
		coord := *s.Coordinates
		stored.Coordinates = &coord
	}
	r.stones[s.UniqueID] = stored
	return nil
}

// Recent returns the most recently created stones, newest first.
func (r *WandersteinRepo) Recent(ctx context.Context, limit int) ([]domain.Wanderstein, error) {
	all, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// All returns every stone, newest first.
func (r *WandersteinRepo) All(ctx context.Context) ([]domain.Wanderstein, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stones := make([]domain.Wanderstein, 0, len(r.stones))
	for _, s := range r.stones {
		stones = append(stones, s)
	}
	sortNewestFirst(stones)
	return stones, nil
}

// GetByUniqueID returns a stone by its external identifier.
func (r *WandersteinRepo) GetByUniqueID(ctx context.Context, uniqueID string) (*domain.Wanderstein, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.stones[uniqueID]
	if !ok {
		return nil, fmt.Errorf("wanderstein %q: %w", uniqueID, domain.ErrNotFound)
	}
	return &s, nil
}

// FindNearby filters stones by great-circle distance from center,
// newest first. Stones without a coordinate never match.
func (r *WandersteinRepo) FindNearby(ctx context.Context, center domain.GeoCoordinate, radiusMeters float64) ([]domain.Wanderstein, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []domain.Wanderstein
	for _, s := range r.stones {
		if s.Coordinates == nil {
			continue
		}
		if geospatial.DistanceMeters(*s.Coordinates, center) <= radiusMeters {
			matches = append(matches, s)
		}
	}
	sortNewestFirst(matches)
	return matches, nil
}

// sortNewestFirst orders by creation time descending, id descending as
// a deterministic tie-break.
func sortNewestFirst(stones []domain.Wanderstein) {
	sort.Slice(stones, func(i, j int) bool {
		if !stones[i].CreatedAt.Equal(stones[j].CreatedAt) {
			return stones[i].CreatedAt.After(stones[j].CreatedAt)
		}
		return stones[i].ID > stones[j].ID
	})
}

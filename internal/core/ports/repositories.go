package ports

import (
	"context"

	"github.com/trailmarks-io/trailmarks/internal/core/domain"
)

// WandersteinRepository persists hiking stones.
//
// FindNearby returns stones whose stored coordinate is within
// radiusMeters of center, newest first. Stones without a coordinate are
// never returned. Implementations may evaluate the distance predicate
// natively in the store or in process; both must use spherical distance.
type WandersteinRepository interface {
	Upsert(ctx context.Context, stone *domain.Wanderstein) error
	Recent(ctx context.Context, limit int) ([]domain.Wanderstein, error)
	All(ctx context.Context) ([]domain.Wanderstein, error)
	GetByUniqueID(ctx context.Context, uniqueID string) (*domain.Wanderstein, error)
	FindNearby(ctx context.Context, center domain.GeoCoordinate, radiusMeters float64) ([]domain.Wanderstein, error)
}

// TranslationRepository persists UI translations.
type TranslationRepository interface {
	Upsert(ctx context.Context, tr *domain.Translation) error
	ListByLanguage(ctx context.Context, language string) ([]domain.Translation, error)
	Languages(ctx context.Context) ([]string, error)
}

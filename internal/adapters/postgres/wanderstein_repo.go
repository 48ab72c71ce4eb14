package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/trailmarks-io/trailmarks/internal/core/domain"
)

// WandersteinRepo implements ports.WandersteinRepository with pgx.
//
// The coordinate is stored as a single geography(Point,4326) column so
// that the radius predicate runs natively in PostGIS (ST_DWithin over
// geography computes spherical distance in meters).
type WandersteinRepo struct {
	db *DB
}

// NewWandersteinRepo creates a new WandersteinRepo.
func NewWandersteinRepo(db *DB) *WandersteinRepo {
	return &WandersteinRepo{db: db}
}

const stoneColumns = `
	id, name, unique_id,
	COALESCE(preview_url, ''), COALESCE(description, ''), COALESCE(location, ''),
	ST_Y(location_point::geometry) AS lat,
	ST_X(location_point::geometry) AS lon,
	created_at, updated_at`

// Upsert inserts or updates a stone keyed by its unique identifier.
// A nil coordinate is stored as NULL, never as a zero point.
func (r *WandersteinRepo) Upsert(ctx context.Context, s *domain.Wanderstein) error {
	var lat, lon *float64
	if s.Coordinates != nil {
		lat, lon = &s.Coordinates.Latitude, &s.Coordinates.Longitude
	}
	_, err := r.db.Pool.Exec(ctx, `
		INSERT INTO wandersteine (name, unique_id, preview_url, description, location, location_point, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5,
		        CASE WHEN $6::float8 IS NULL THEN NULL
		             ELSE ST_SetSRID(ST_MakePoint($7, $6), 4326)::geography END,
		        $8, $9)
		ON CONFLICT (unique_id) DO UPDATE
		SET name = EXCLUDED.name, preview_url = EXCLUDED.preview_url,
		    description = EXCLUDED.description, location = EXCLUDED.location,
		    location_point = EXCLUDED.location_point,
		    updated_at = EXCLUDED.updated_at
	`, s.Name, s.UniqueID, s.PreviewURL, s.Description, s.Location,
		lat, lon, s.CreatedAt, s.UpdatedAt)
	return err
}

// Recent returns the most recently created stones, newest first.
func (r *WandersteinRepo) Recent(ctx context.Context, limit int) ([]domain.Wanderstein, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT `+stoneColumns+`
		FROM wandersteine
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStones(rows)
}

// All returns every stone, newest first.
func (r *WandersteinRepo) All(ctx context.Context) ([]domain.Wanderstein, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT ` + stoneColumns + `
		FROM wandersteine
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStones(rows)
}

// GetByUniqueID returns a stone by its external identifier.
func (r *WandersteinRepo) GetByUniqueID(ctx context.Context, uniqueID string) (*domain.Wanderstein, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT `+stoneColumns+`
		FROM wandersteine WHERE unique_id = $1
	`, uniqueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stones, err := scanStones(rows)
	if err != nil {
		return nil, err
	}
	if len(stones) == 0 {
		return nil, fmt.Errorf("wanderstein %q: %w", uniqueID, domain.ErrNotFound)
	}
	return &stones[0], nil
}

// FindNearby returns stones within radiusMeters of center using PostGIS
// ST_DWithin on the geography column. Stones without a stored point are
// excluded by the IS NOT NULL guard.
func (r *WandersteinRepo) FindNearby(ctx context.Context, center domain.GeoCoordinate, radiusMeters float64) ([]domain.Wanderstein, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT `+stoneColumns+`
		FROM wandersteine
		WHERE location_point IS NOT NULL
		  AND ST_DWithin(location_point, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $3)
		ORDER BY created_at DESC, id DESC
	`, center.Longitude, center.Latitude, radiusMeters)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStones(rows)
}

func scanStones(rows pgx.Rows) ([]domain.Wanderstein, error) {
	var stones []domain.Wanderstein
	for rows.Next() {
		var s domain.Wanderstein
		var lat, lon *float64
		if err := rows.Scan(
			&s.ID, &s.Name, &s.UniqueID,
			&s.PreviewURL, &s.Description, &s.Location,
			&lat, &lon,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if lat != nil && lon != nil {
			s.Coordinates = &domain.GeoCoordinate{Latitude: *lat, Longitude: *lon}
		}
		stones = append(stones, s)
	}
	return stones, rows.Err()
}

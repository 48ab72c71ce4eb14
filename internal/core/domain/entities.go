package domain

import (
	"time"
)

// Wanderstein represents a hiking stone in the catalog.
//
// Coordinates is nil when the stone has no known position. A nil
// coordinate is a first-class state, not an error; (0,0) is a real
// place and must never be used as an "absent" sentinel.
type Wanderstein struct {
	ID          uint           `json:"id"`
	Name        string         `json:"name"`
	UniqueID    string         `json:"unique_id"`
	PreviewURL  string         `json:"preview_url"`
	Description string         `json:"description"`
	Location    string         `json:"location"`
	Coordinates *GeoCoordinate `json:"coordinates,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Translation is a single UI text in one language, keyed by a
// dot-notation key such as "wanderstein.title".
type Translation struct {
	ID        uint      `json:"id"`
	Key       string    `json:"key"`
	Language  string    `json:"language"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package http

import (
	"time"

	"github.com/trailmarks-io/trailmarks/internal/core/domain"
)

// Timestamps cross the wire as yyyy-MM-ddTHH:mm:ssZ — UTC, second
// precision, literal Z. The frontend parses exactly this; no fractional
// seconds or offsets.
const wireTimeLayout = "2006-01-02T15:04:05Z"

func formatWireTime(t time.Time) string {
	return t.UTC().Format(wireTimeLayout)
}

// WandersteinResponse is the list-item projection of a stone. The mixed
// field casing is the wire contract the frontend depends on.
type WandersteinResponse struct {
	ID         uint     `json:"id"`
	Name       string   `json:"name"`
	UniqueID   string   `json:"unique_Id"`
	PreviewURL string   `json:"preview_Url"`
	CreatedAt  string   `json:"created_At"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	Location   string   `json:"location"`
}

// WandersteinDetailResponse is the single-stone projection; it adds the
// description and update time to the list-item shape.
type WandersteinDetailResponse struct {
	WandersteinResponse
	Description string `json:"description"`
	UpdatedAt   string `json:"updated_At"`
}

func toListItem(s domain.Wanderstein) WandersteinResponse {
	resp := WandersteinResponse{
		ID:         s.ID,
		Name:       s.Name,
		UniqueID:   s.UniqueID,
		PreviewURL: s.PreviewURL,
		CreatedAt:  formatWireTime(s.CreatedAt),
		Location:   s.Location,
	}
	if s.Coordinates != nil {
		lat, lon := s.Coordinates.Latitude, s.Coordinates.Longitude
		resp.Latitude, resp.Longitude = &lat, &lon
	}
	return resp
}

func toListItems(stones []domain.Wanderstein) []WandersteinResponse {
	responses := make([]WandersteinResponse, 0, len(stones))
	for _, s := range stones {
		responses = append(responses, toListItem(s))
	}
	return responses
}

func toDetail(s domain.Wanderstein) WandersteinDetailResponse {
	return WandersteinDetailResponse{
		WandersteinResponse: toListItem(s),
		Description:         s.Description,
		UpdatedAt:           formatWireTime(s.UpdatedAt),
	}
}

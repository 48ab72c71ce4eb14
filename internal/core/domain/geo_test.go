package domain_test

import (
	"testing"

	"github.com/trailmarks-io/trailmarks/internal/core/domain"
)

func TestGeoCoordinate_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		want     bool
	}{
		{"origin", 0, 0, true},
		{"max corner", 90, 180, true},
		{"min corner", -90, -180, true},
		{"bochum", 51.4818, 7.2162, true},
		{"latitude too high", 90.0001, 0, false},
		{"latitude too low", -90.0001, 0, false},
		{"longitude too high", 0, 180.0001, false},
		{"longitude too low", 0, -180.0001, false},
		{"both out of range", 95, 200, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := domain.GeoCoordinate{Latitude: tt.lat, Longitude: tt.lon}
			if got := c.IsValid(); got != tt.want {
				t.Errorf("(%g, %g).IsValid() = %v, want %v", tt.lat, tt.lon, got, tt.want)
			}
		})
	}
}

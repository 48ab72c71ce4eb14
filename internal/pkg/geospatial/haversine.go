package geospatial

import (
	"math"

	"github.com/trailmarks-io/trailmarks/internal/core/domain"
)

const earthRadiusKm = 6371.0

// DistanceKm calculates the great-circle distance in kilometers between
// two points using the Haversine formula.
func DistanceKm(a, b domain.GeoCoordinate) float64 {
	lat1 := toRad(a.Latitude)
	lat2 := toRad(b.Latitude)
	dLat := toRad(b.Latitude - a.Latitude)
	dLon := toRad(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

// DistanceMeters is DistanceKm in meters, matching the unit PostGIS
// geography distances are expressed in.
func DistanceMeters(a, b domain.GeoCoordinate) float64 {
	return DistanceKm(a, b) * 1000
}

// BoundingBox returns a bounding box around a point with the given radius
// in kilometers. It is a cheap prefilter only; matches still need an exact
// distance check.
func BoundingBox(center domain.GeoCoordinate, radiusKm float64) (minLat, minLon, maxLat, maxLon float64) {
	latDelta := radiusKm / 111.32
	lonDelta := radiusKm / (111.32 * math.Cos(toRad(center.Latitude)))

	return center.Latitude - latDelta, center.Longitude - lonDelta,
		center.Latitude + latDelta, center.Longitude + lonDelta
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

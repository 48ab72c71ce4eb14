package domain

// GeoCoordinate represents a geographic coordinate (WGS 84).
type GeoCoordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// IsValid reports whether the coordinate lies within WGS 84 bounds:
// latitude in [-90, 90] and longitude in [-180, 180]. The type itself
// does not enforce this; callers validate at the API boundary.
func (c GeoCoordinate) IsValid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

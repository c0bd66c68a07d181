package kernel

import "fmt"

// GeoPoint is an immutable latitude/longitude pair. Coordinates are not
// bounds-checked: the tracker stores whatever the courier device reports.
type GeoPoint struct {
	latitude  float64
	longitude float64
}

// NewGeoPoint builds a point from raw coordinates.
func NewGeoPoint(latitude, longitude float64) GeoPoint {
	return GeoPoint{latitude: latitude, longitude: longitude}
}

func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// Offset returns a new point moved by the given deltas.
func (p GeoPoint) Offset(dLatitude, dLongitude float64) GeoPoint {
	return GeoPoint{latitude: p.latitude + dLatitude, longitude: p.longitude + dLongitude}
}

// String renders the point with six decimals, e.g. "Lat: -9.649800, Long: -35.708900".
func (p GeoPoint) String() string {
	return fmt.Sprintf("Lat: %.6f, Long: %.6f", p.latitude, p.longitude)
}

// IsEqual compares both coordinates exactly.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p == other
}

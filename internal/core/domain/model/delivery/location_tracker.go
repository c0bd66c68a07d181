package delivery

import (
	"time"

	"deliverytracking/internal/core/domain/model/kernel"
)

// LocationInfo is a read-only view of the tracker.
type LocationInfo struct {
	Latitude  float64
	Longitude float64
	Timestamp time.Time
	Formatted string
}

// LocationTracker keeps the courier's last reported position and when it was
// captured. It is owned by a Delivery and guarded by the delivery's lock.
type LocationTracker struct {
	point     kernel.GeoPoint
	timestamp time.Time
}

// NewLocationTracker starts at (0, 0) captured at the given time.
func NewLocationTracker(at time.Time) *LocationTracker {
	return &LocationTracker{point: kernel.NewGeoPoint(0, 0), timestamp: at}
}

// Update replaces the coordinates and capture time.
func (t *LocationTracker) Update(latitude, longitude float64, at time.Time) {
	t.point = kernel.NewGeoPoint(latitude, longitude)
	t.timestamp = at
}

func (t *LocationTracker) Point() kernel.GeoPoint {
	return t.point
}

func (t *LocationTracker) Timestamp() time.Time {
	return t.timestamp
}

// Formatted renders "Lat: x, Long: y" with six decimals.
func (t *LocationTracker) Formatted() string {
	return t.point.String()
}

func (t *LocationTracker) Info() LocationInfo {
	return LocationInfo{
		Latitude:  t.point.Latitude(),
		Longitude: t.point.Longitude(),
		Timestamp: t.timestamp,
		Formatted: t.Formatted(),
	}
}

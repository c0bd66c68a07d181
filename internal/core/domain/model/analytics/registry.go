package analytics

import (
	"log/slog"
	"sync"

	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/core/ports"

	"github.com/google/uuid"
)

// Registry owns one RestaurantAnalytics per restaurant, created on first use.
// It implements ports.AnalyticsCollectorProvider.
type Registry struct {
	mu         sync.Mutex
	collectors map[uuid.UUID]*RestaurantAnalytics

	clock  kernel.Clock
	store  SnapshotStore
	logger *slog.Logger
}

// NewRegistry creates an empty registry; store may be nil.
func NewRegistry(clock kernel.Clock, store SnapshotStore, logger *slog.Logger) *Registry {
	return &Registry{
		collectors: make(map[uuid.UUID]*RestaurantAnalytics),
		clock:      clock,
		store:      store,
		logger:     logger,
	}
}

// CollectorFor returns the restaurant's collector.
func (r *Registry) CollectorFor(restaurantID kernel.UUID) ports.AnalyticsCollector {
	return r.Analytics(restaurantID)
}

// Analytics returns the restaurant's analytics, creating them if needed.
func (r *Registry) Analytics(restaurantID kernel.UUID) *RestaurantAnalytics {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.collectors[restaurantID.Bytes()]; ok {
		return a
	}
	a := NewRestaurantAnalytics(restaurantID, r.clock, r.store, r.logger)
	r.collectors[restaurantID.Bytes()] = a
	return a
}

// Lookup returns the restaurant's analytics without creating them.
func (r *Registry) Lookup(restaurantID kernel.UUID) (*RestaurantAnalytics, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.collectors[restaurantID.Bytes()]
	return a, ok
}

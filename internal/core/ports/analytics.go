package ports

import (
	"context"

	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/core/domain/model/order"
)

// AnalyticsCollector ingests one order, optionally with the delivery state it
// was observed in.
type AnalyticsCollector interface {
	AddOrderData(ctx context.Context, o *order.Order, snapshot *delivery.Snapshot) error
}

// AnalyticsCollectorProvider returns the collector owned by a restaurant.
type AnalyticsCollectorProvider interface {
	CollectorFor(restaurantID kernel.UUID) AnalyticsCollector
}

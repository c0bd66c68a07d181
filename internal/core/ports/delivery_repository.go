// Package ports defines the contracts between the delivery core and its
// adapters: where deliveries are kept, how parties are looked up, how default
// observers are built and how messages leave the process.
package ports

import (
	"context"

	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/kernel"
)

// DeliveryRepository holds live Delivery aggregates. Delivery state is not
// persisted across restarts, so implementations keep the aggregates
// themselves rather than a serialized copy.
type DeliveryRepository interface {
	// Add stores a new delivery. Adding an ID twice is an error.
	Add(ctx context.Context, d *delivery.Delivery) error

	// Get returns the delivery with the given ID or an *errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetAll returns every delivery ordered by creation.
	GetAll(ctx context.Context) ([]*delivery.Delivery, error)

	// GetAllActive returns the deliveries not yet Delivered or Cancelled,
	// ordered by creation.
	GetAllActive(ctx context.Context) ([]*delivery.Delivery, error)
}

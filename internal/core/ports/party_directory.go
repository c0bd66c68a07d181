package ports

import (
	"context"

	"deliverytracking/internal/core/domain/model/order"
)

// PartyDirectory resolves customers and restaurants by display name so that
// repeated orders from the same customer share one notification log.
type PartyDirectory interface {
	// Customer returns the customer with that name, registering it on first use.
	Customer(ctx context.Context, name string) (*order.Customer, error)

	// Restaurant returns the restaurant with that name, registering it on first use.
	Restaurant(ctx context.Context, name string) (*order.Restaurant, error)

	// FindRestaurant looks a restaurant up without registering it. It returns
	// an *errs.ObjectNotFoundError for unknown names.
	FindRestaurant(ctx context.Context, name string) (*order.Restaurant, error)
}

package queries

import (
	"errors"
	"time"

	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/pkg/guard"
)

var ErrGetActiveDeliveriesQueryIsNotConstructed = errors.New(
	"GetActiveDeliveriesQuery must be created via NewGetActiveDeliveriesQuery constructor",
)

// GetActiveDeliveriesQuery lists every delivery that is neither delivered
// nor cancelled, oldest first.
type GetActiveDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetActiveDeliveriesQuery() GetActiveDeliveriesQuery {
	return GetActiveDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetActiveDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveDeliveriesQueryIsNotConstructed)
}

// GetActiveDeliveriesQueryResponse is one row of the active list.
type GetActiveDeliveriesQueryResponse struct {
	ID             kernel.UUID
	OrderID        kernel.UUID
	CustomerName   string
	RestaurantName string
	Status         string
	StatusCode     string
	DeliveryPerson string
	EstimatedAt    *time.Time
	TrackingLink   string
}

package queries

import (
	"errors"

	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/pkg/guard"
)

var ErrGetRestaurantStatusCountsQueryIsNotConstructed = errors.New(
	"GetRestaurantStatusCountsQuery must be created via NewGetRestaurantStatusCountsQuery constructor",
)

// GetRestaurantStatusCountsQuery counts the recorded analytics snapshots of a
// restaurant per delivery status. Every status change of every delivery is a
// snapshot, so the counts read as "how many deliveries went through X".
type GetRestaurantStatusCountsQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetRestaurantStatusCountsQuery(restaurantID kernel.UUID) (GetRestaurantStatusCountsQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantStatusCountsQuery{}, err
	}
	return GetRestaurantStatusCountsQuery{restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRestaurantStatusCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantStatusCountsQueryIsNotConstructed)
}

func (q GetRestaurantStatusCountsQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// GetRestaurantStatusCountsQueryResponse is one status with its count.
type GetRestaurantStatusCountsQueryResponse struct {
	Status delivery.Status
	Count  int64
}

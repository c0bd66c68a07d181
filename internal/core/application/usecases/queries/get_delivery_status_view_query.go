package queries

import (
	"errors"

	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/pkg/guard"
)

var ErrGetDeliveryStatusViewQueryIsNotConstructed = errors.New(
	"GetDeliveryStatusViewQuery must be created via NewGetDeliveryStatusViewQuery constructor",
)

// GetDeliveryStatusViewQuery renders one delivery for display.
//
// Example:
//
//	query, err := NewGetDeliveryStatusViewQuery(id)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
//	fmt.Println(view.Text)
type GetDeliveryStatusViewQuery struct {
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetDeliveryStatusViewQuery(deliveryID kernel.UUID) (GetDeliveryStatusViewQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return GetDeliveryStatusViewQuery{}, err
	}
	return GetDeliveryStatusViewQuery{deliveryID: deliveryID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDeliveryStatusViewQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryStatusViewQueryIsNotConstructed)
}

func (q GetDeliveryStatusViewQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}

// GetDeliveryStatusViewQueryResponse carries the rendered view along with the
// status it was rendered in.
type GetDeliveryStatusViewQueryResponse struct {
	DeliveryID kernel.UUID
	Status     string
	Text       string
}

package commands

import (
	"errors"

	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/pkg/guard"
)

var ErrUpdateDeliveryLocationCommandIsNotConstructed = errors.New(
	"UpdateDeliveryLocationCommand must be created via NewUpdateDeliveryLocationCommand constructor",
)

// UpdateDeliveryLocationCommand reports a courier position. Coordinates are
// taken as given.
type UpdateDeliveryLocationCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	latitude   float64
	longitude  float64

	guard guard.ConstructorGuard
}

func NewUpdateDeliveryLocationCommand(
	deliveryID kernel.UUID,
	latitude, longitude float64,
) (UpdateDeliveryLocationCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return UpdateDeliveryLocationCommand{}, err
	}

	return UpdateDeliveryLocationCommand{
		deliveryID: deliveryID,
		latitude:   latitude,
		longitude:  longitude,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateDeliveryLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryLocationCommandIsNotConstructed)
}

func (c UpdateDeliveryLocationCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c UpdateDeliveryLocationCommand) Latitude() float64 {
	return c.latitude
}

func (c UpdateDeliveryLocationCommand) Longitude() float64 {
	return c.longitude
}

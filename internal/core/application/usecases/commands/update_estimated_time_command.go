package commands

import (
	"errors"

	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/pkg/guard"
)

var ErrUpdateEstimatedTimeCommandIsNotConstructed = errors.New(
	"UpdateEstimatedTimeCommand must be created via NewUpdateEstimatedTimeCommand constructor",
)

// UpdateEstimatedTimeCommand overrides the delivery estimate with now plus
// the given minutes, whatever the current status.
type UpdateEstimatedTimeCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	minutes    int

	guard guard.ConstructorGuard
}

func NewUpdateEstimatedTimeCommand(deliveryID kernel.UUID, minutes int) (UpdateEstimatedTimeCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return UpdateEstimatedTimeCommand{}, err
	}

	return UpdateEstimatedTimeCommand{
		deliveryID: deliveryID,
		minutes:    minutes,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateEstimatedTimeCommand) Validate() error {
	return c.guard.Validate(ErrUpdateEstimatedTimeCommandIsNotConstructed)
}

func (c UpdateEstimatedTimeCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c UpdateEstimatedTimeCommand) Minutes() int {
	return c.minutes
}

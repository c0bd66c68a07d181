package commands

import (
	"errors"

	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/pkg/guard"
)

var ErrAdvanceDeliveriesCommandIsNotConstructed = errors.New(
	"AdvanceDeliveriesCommand must be created via NewAdvanceOneDeliveryCommand or NewAdvanceActiveDeliveriesCommand",
)

// AdvanceDeliveriesCommand runs one simulation step either on a single
// delivery or on every active delivery.
//
// Example:
//
//	// from the scheduler
//	cmd := NewAdvanceActiveDeliveriesCommand()
//	advanced, err := handler.Handle(ctx, cmd)
//
//	// from the HTTP edge
//	cmd, err := NewAdvanceOneDeliveryCommand(id)
type AdvanceDeliveriesCommand struct {
	deliveryID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAdvanceOneDeliveryCommand targets a single delivery.
func NewAdvanceOneDeliveryCommand(deliveryID kernel.UUID) (AdvanceDeliveriesCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return AdvanceDeliveriesCommand{}, err
	}
	return AdvanceDeliveriesCommand{
		deliveryID: &deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// NewAdvanceActiveDeliveriesCommand targets every delivery that is neither
// delivered nor cancelled.
func NewAdvanceActiveDeliveriesCommand() AdvanceDeliveriesCommand {
	return AdvanceDeliveriesCommand{guard: guard.NewConstructorGuard()}
}

func (c AdvanceDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveriesCommandIsNotConstructed)
}

// DeliveryID returns the targeted delivery, or false for all active ones.
func (c AdvanceDeliveriesCommand) DeliveryID() (kernel.UUID, bool) {
	if c.deliveryID == nil {
		return kernel.UUID{}, false
	}
	return *c.deliveryID, true
}

package commands

import (
	"context"

	"deliverytracking/internal/core/ports"
)

type AssignDeliveryPersonCommandHandler struct {
	deliveries ports.DeliveryRepository
}

func NewAssignDeliveryPersonCommandHandler(deliveries ports.DeliveryRepository) AssignDeliveryPersonCommandHandler {
	return AssignDeliveryPersonCommandHandler{deliveries: deliveries}
}

func (h *AssignDeliveryPersonCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryPersonCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d, err := h.deliveries.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	return d.AssignDeliveryPerson(ctx, cmd.Name())
}

package commands

import (
	"context"

	"deliverytracking/internal/core/ports"
)

// UpdateDeliveryStatusCommandHandler applies a status change and lets the
// delivery notify its observers.
type UpdateDeliveryStatusCommandHandler struct {
	deliveries ports.DeliveryRepository
}

func NewUpdateDeliveryStatusCommandHandler(deliveries ports.DeliveryRepository) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{deliveries: deliveries}
}

func (h *UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d, err := h.deliveries.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	return d.UpdateStatusFromText(ctx, cmd.Status(), cmd.Notes())
}

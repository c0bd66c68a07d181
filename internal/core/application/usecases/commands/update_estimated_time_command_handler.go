package commands

import (
	"context"

	"deliverytracking/internal/core/ports"
)

type UpdateEstimatedTimeCommandHandler struct {
	deliveries ports.DeliveryRepository
}

func NewUpdateEstimatedTimeCommandHandler(deliveries ports.DeliveryRepository) UpdateEstimatedTimeCommandHandler {
	return UpdateEstimatedTimeCommandHandler{deliveries: deliveries}
}

// Handle sets the estimate. Observers are not notified since the status is unchanged.
func (h *UpdateEstimatedTimeCommandHandler) Handle(ctx context.Context, cmd UpdateEstimatedTimeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d, err := h.deliveries.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	d.UpdateEstimatedTime(cmd.Minutes())
	return nil
}

package commands

import (
	"context"

	"deliverytracking/internal/core/ports"
)

// UpdateDeliveryLocationCommandHandler moves the tracker. A delivery that is
// "A caminho" may switch to "Próximo ao destino" as a result.
type UpdateDeliveryLocationCommandHandler struct {
	deliveries ports.DeliveryRepository
}

func NewUpdateDeliveryLocationCommandHandler(deliveries ports.DeliveryRepository) UpdateDeliveryLocationCommandHandler {
	return UpdateDeliveryLocationCommandHandler{deliveries: deliveries}
}

func (h *UpdateDeliveryLocationCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d, err := h.deliveries.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	return d.UpdateLocation(ctx, cmd.Latitude(), cmd.Longitude())
}

package commands

import (
	"context"

	"deliverytracking/internal/core/ports"
)

type AddDeliveryNoteCommandHandler struct {
	deliveries ports.DeliveryRepository
}

func NewAddDeliveryNoteCommandHandler(deliveries ports.DeliveryRepository) AddDeliveryNoteCommandHandler {
	return AddDeliveryNoteCommandHandler{deliveries: deliveries}
}

func (h *AddDeliveryNoteCommandHandler) Handle(ctx context.Context, cmd AddDeliveryNoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d, err := h.deliveries.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	d.AddDeliveryNote(cmd.Note())
	return nil
}

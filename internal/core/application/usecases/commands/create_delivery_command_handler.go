package commands

import (
	"context"
	"errors"
	"log/slog"

	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/core/domain/model/order"
	"deliverytracking/internal/core/ports"
)

// DeliveryRuntime carries what every new delivery is built with. Zero
// fields fall back to the delivery defaults.
type DeliveryRuntime struct {
	Clock           kernel.Clock
	Random          kernel.RandomSource
	Logger          *slog.Logger
	FailureListener delivery.FailureListener
}

// CreateDeliveryCommandHandler resolves the parties, builds the order and
// its delivery, attaches the default observers and stores the delivery.
type CreateDeliveryCommandHandler struct {
	deliveries ports.DeliveryRepository
	parties    ports.PartyDirectory
	observers  ports.ObserverFactory
	runtime    DeliveryRuntime
}

func NewCreateDeliveryCommandHandler(
	deliveries ports.DeliveryRepository,
	parties ports.PartyDirectory,
	observers ports.ObserverFactory,
	runtime DeliveryRuntime,
) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		deliveries: deliveries,
		parties:    parties,
		observers:  observers,
		runtime:    runtime,
	}
}

// Handle creates the delivery. Nothing is stored when any step fails.
func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	customer, err := h.parties.Customer(ctx, cmd.CustomerName())
	if err != nil {
		return err
	}
	restaurant, err := h.parties.Restaurant(ctx, cmd.RestaurantName())
	if err != nil {
		return err
	}

	items, err := buildLineItems(cmd.Items())
	if err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), customer, restaurant, items)
	if err != nil {
		return err
	}
	o.SetDeliveryInstructions(cmd.DeliveryInstructions())

	d, err := delivery.NewDelivery(cmd.DeliveryID(), o, h.runtime.Clock, h.runtime.Random, h.runtime.Logger)
	if err != nil {
		return err
	}
	if h.observers != nil {
		for _, observer := range h.observers.ObserversFor(o) {
			d.Attach(observer)
		}
	}
	if h.runtime.FailureListener != nil {
		d.SetFailureListener(h.runtime.FailureListener)
	}

	return h.deliveries.Add(ctx, d)
}

func buildLineItems(items []Item) ([]order.LineItem, error) {
	lines := make([]order.LineItem, 0, len(items))
	var errList []error
	for _, item := range items {
		line, err := order.NewLineItem(item.Name, item.Quantity, item.UnitPrice)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		lines = append(lines, line)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return lines, nil
}

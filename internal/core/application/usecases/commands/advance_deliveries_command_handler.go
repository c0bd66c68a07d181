package commands

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/ports"
)

// AdvanceDeliveriesCommandHandler drives the progress simulation. Deliveries
// share no state, so each one is advanced on its own goroutine.
type AdvanceDeliveriesCommandHandler struct {
	deliveries ports.DeliveryRepository
}

func NewAdvanceDeliveriesCommandHandler(deliveries ports.DeliveryRepository) AdvanceDeliveriesCommandHandler {
	return AdvanceDeliveriesCommandHandler{deliveries: deliveries}
}

// Handle returns how many deliveries were stepped. A failure on one delivery
// does not stop the others; all failures are joined.
func (h *AdvanceDeliveriesCommandHandler) Handle(ctx context.Context, cmd AdvanceDeliveriesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	if id, ok := cmd.DeliveryID(); ok {
		d, err := h.deliveries.Get(ctx, id)
		if err != nil {
			return 0, err
		}
		if err = d.AdvanceProgress(ctx); err != nil {
			return 0, err
		}
		return 1, nil
	}

	active, err := h.deliveries.GetAllActive(ctx)
	if err != nil {
		return 0, err
	}

	errList := make([]error, len(active))
	var wg sync.WaitGroup
	for i, d := range active {
		wg.Add(1)
		go func(i int, d *delivery.Delivery) {
			defer wg.Done()
			if err := d.AdvanceProgress(ctx); err != nil {
				errList[i] = fmt.Errorf("advance delivery %s: %w", d.ID(), err)
			}
		}(i, d)
	}
	wg.Wait()

	return len(active), errors.Join(errList...)
}

package queries

import (
	"context"

	"deliverytracking/internal/core/ports"
)

type GetActiveDeliveriesQueryHandler struct {
	deliveries ports.DeliveryRepository
}

func NewGetActiveDeliveriesQueryHandler(deliveries ports.DeliveryRepository) GetActiveDeliveriesQueryHandler {
	return GetActiveDeliveriesQueryHandler{deliveries: deliveries}
}

func (h GetActiveDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveDeliveriesQuery,
) ([]GetActiveDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	active, err := h.deliveries.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]GetActiveDeliveriesQueryResponse, 0, len(active))
	for _, d := range active {
		snap := d.Snapshot()
		o := snap.Order
		rows = append(rows, GetActiveDeliveriesQueryResponse{
			ID:             snap.DeliveryID,
			OrderID:        o.ID(),
			CustomerName:   o.Customer().Name(),
			RestaurantName: o.Restaurant().Name(),
			Status:         snap.Status.Label(),
			StatusCode:     snap.Status.Code(),
			DeliveryPerson: snap.DeliveryPerson,
			EstimatedAt:    snap.EstimatedAt,
			TrackingLink:   d.TrackingLink(),
		})
	}
	return rows, nil
}

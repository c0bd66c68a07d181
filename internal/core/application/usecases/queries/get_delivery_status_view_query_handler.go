package queries

import (
	"context"

	"deliverytracking/internal/core/ports"
)

type GetDeliveryStatusViewQueryHandler struct {
	deliveries ports.DeliveryRepository
}

func NewGetDeliveryStatusViewQueryHandler(deliveries ports.DeliveryRepository) GetDeliveryStatusViewQueryHandler {
	return GetDeliveryStatusViewQueryHandler{deliveries: deliveries}
}

// Handle returns an *errs.ObjectNotFoundError for unknown deliveries.
func (h GetDeliveryStatusViewQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryStatusViewQuery,
) (GetDeliveryStatusViewQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryStatusViewQueryResponse{}, err
	}

	d, err := h.deliveries.Get(ctx, query.DeliveryID())
	if err != nil {
		return GetDeliveryStatusViewQueryResponse{}, err
	}

	return GetDeliveryStatusViewQueryResponse{
		DeliveryID: d.ID(),
		Status:     d.Status().Label(),
		Text:       d.RenderStatusView(),
	}, nil
}

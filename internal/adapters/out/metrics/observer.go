package metrics

import (
	"context"

	"deliverytracking/internal/core/domain/model/delivery"
)

// DeliveryObserver feeds status changes and fan-out failures into a Sink. It
// implements both delivery.Observer and delivery.FailureListener and is
// shared by every delivery.
type DeliveryObserver struct {
	sink Sink
}

func NewDeliveryObserver(sink Sink) *DeliveryObserver {
	return &DeliveryObserver{sink: sink}
}

func (o *DeliveryObserver) Notify(_ context.Context, snapshot delivery.Snapshot) error {
	o.sink.StatusChanged(snapshot.Status.Code())
	if snapshot.Status == delivery.Delivered && snapshot.EstimatedAt != nil && snapshot.DeliveredAt != nil &&
		snapshot.LastUpdate.Timestamp.Equal(*snapshot.DeliveredAt) {
		o.sink.DeliveredAgainstEstimate(snapshot.DeliveredAt.Sub(*snapshot.EstimatedAt))
	}
	return nil
}

func (o *DeliveryObserver) ObserverFailed(_ context.Context, _ delivery.Snapshot, observer string, _ error) {
	o.sink.ObserverFailed(observer)
}

package delivery

import (
	"context"
	"time"

	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/core/domain/model/order"
)

// Observer is notified synchronously after every status change, in
// attachment order. Implementations must be comparable (pointer receivers)
// since the subject tracks membership by identity, and must not call
// mutating methods on the delivery that notified them.
type Observer interface {
	Notify(ctx context.Context, snapshot Snapshot) error
}

// ObserverFunc adapts a function to Observer. Func values are not comparable,
// so wrap them in a pointer before attaching: d.Attach(&fn).
type ObserverFunc func(ctx context.Context, snapshot Snapshot) error

func (f *ObserverFunc) Notify(ctx context.Context, snapshot Snapshot) error {
	return (*f)(ctx, snapshot)
}

// FailureListener hears about observers that failed during fan-out.
type FailureListener interface {
	ObserverFailed(ctx context.Context, snapshot Snapshot, observer string, err error)
}

// Snapshot is the immutable state handed to observers after a transition.
type Snapshot struct {
	DeliveryID     kernel.UUID
	Order          *order.Order
	Status         Status
	DeliveryPerson string
	EstimatedAt    *time.Time
	DeliveredAt    *time.Time
	LastUpdate     StatusUpdate
	Location       LocationInfo
}

// HasDeliveryPerson reports whether a courier was assigned.
func (s Snapshot) HasDeliveryPerson() bool {
	return s.DeliveryPerson != ""
}

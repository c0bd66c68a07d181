package analytics

import (
	"context"
	"time"

	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Snapshot is one recorded observation of an order.
type Snapshot struct {
	OrderID      kernel.UUID
	RestaurantID kernel.UUID
	CustomerID   kernel.UUID
	Items        map[string]int
	Total        decimal.Decimal
	RecordedAt   time.Time
	OrderStatus  string

	// DeliveryStatus is Unknown when the order was recorded without a delivery.
	DeliveryStatus delivery.Status
	EstimatedAt    *time.Time
	DeliveredAt    *time.Time
}

// HasDelivery reports whether delivery fields were captured.
func (s Snapshot) HasDelivery() bool {
	return s.DeliveryStatus != delivery.Unknown
}

// NewSnapshot captures the order and, when given, the delivery state.
func NewSnapshot(o *order.Order, d *delivery.Snapshot, recordedAt time.Time) Snapshot {
	s := Snapshot{
		OrderID:      o.ID(),
		RestaurantID: o.Restaurant().ID(),
		CustomerID:   o.Customer().ID(),
		Items:        o.Quantities(),
		Total:        o.Total(),
		RecordedAt:   recordedAt,
		OrderStatus:  o.Status().String(),
	}
	if d != nil {
		s.DeliveryStatus = d.Status
		s.EstimatedAt = copyTime(d.EstimatedAt)
		s.DeliveredAt = copyTime(d.DeliveredAt)
	}
	return s
}

// SnapshotStore keeps every recorded snapshot.
type SnapshotStore interface {
	Save(ctx context.Context, snapshot Snapshot) error
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

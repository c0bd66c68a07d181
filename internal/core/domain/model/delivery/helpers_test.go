package delivery_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/core/domain/model/order"
	"deliverytracking/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 5, 10, 20, 0, 0, 0, time.UTC)

type recordingObserver struct {
	mu        sync.Mutex
	snapshots []delivery.Snapshot
	err       error
}

func (r *recordingObserver) Notify(_ context.Context, s delivery.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots = append(r.snapshots, s)
	return r.err
}

func (r *recordingObserver) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.snapshots)
}

func (r *recordingObserver) statuses() []delivery.Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]delivery.Status, 0, len(r.snapshots))
	for _, s := range r.snapshots {
		out = append(out, s.Status)
	}
	return out
}

type panickingObserver struct{}

func (panickingObserver) Notify(context.Context, delivery.Snapshot) error {
	panic("boom")
}

var errObserver = errors.New("observer unavailable")

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	customer, err := order.NewCustomer(kernel.NewUUID(), "Bob")
	require.NoError(t, err)
	restaurant, err := order.NewRestaurant(kernel.NewUUID(), "Cantina da Praia")
	require.NoError(t, err)
	item, err := order.NewLineItem("Pizza", 1, decimal.NewFromInt(40))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), customer, restaurant, []order.LineItem{item})
	require.NoError(t, err)
	return o
}

func newDelivery(t *testing.T, clock kernel.Clock, random kernel.RandomSource) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(kernel.NewUUID(), newOrder(t), clock, random, testutil.DiscardLogger())
	require.NoError(t, err)
	return d
}

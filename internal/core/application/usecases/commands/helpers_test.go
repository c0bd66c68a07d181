package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/core/domain/model/order"
	"deliverytracking/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 5, 10, 20, 0, 0, 0, time.UTC)

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetAll(ctx context.Context) ([]*delivery.Delivery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetAllActive(ctx context.Context) ([]*delivery.Delivery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

type MockPartyDirectory struct{ mock.Mock }

func (m *MockPartyDirectory) Customer(ctx context.Context, name string) (*order.Customer, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Customer), args.Error(1)
}

func (m *MockPartyDirectory) Restaurant(ctx context.Context, name string) (*order.Restaurant, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Restaurant), args.Error(1)
}

func (m *MockPartyDirectory) FindRestaurant(ctx context.Context, name string) (*order.Restaurant, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Restaurant), args.Error(1)
}

type stubObserverFactory struct {
	observers []delivery.Observer
}

func (f stubObserverFactory) ObserversFor(*order.Order) []delivery.Observer {
	return f.observers
}

type recordingObserver struct {
	mu       sync.Mutex
	statuses []delivery.Status
}

func (r *recordingObserver) Notify(_ context.Context, s delivery.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, s.Status)
	return nil
}

func (r *recordingObserver) seen() []delivery.Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]delivery.Status(nil), r.statuses...)
}

func newDelivery(t *testing.T, random kernel.RandomSource) *delivery.Delivery {
	t.Helper()
	customer, err := order.NewCustomer(kernel.NewUUID(), "Bob")
	require.NoError(t, err)
	restaurant, err := order.NewRestaurant(kernel.NewUUID(), "Cantina da Praia")
	require.NoError(t, err)
	item, err := order.NewLineItem("Pizza", 1, decimal.NewFromInt(40))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), customer, restaurant, []order.LineItem{item})
	require.NoError(t, err)
	if random == nil {
		random = testutil.NewScriptedRandom()
	}
	d, err := delivery.NewDelivery(kernel.NewUUID(), o, testutil.NewFakeClock(baseTime), random, testutil.DiscardLogger())
	require.NoError(t, err)
	return d
}

package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"deliverytracking/internal/core/domain/model/analytics"
	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/core/domain/model/order"
	"deliverytracking/internal/pkg/errs"
	"deliverytracking/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Friday evening.
var baseTime = time.Date(2024, 5, 10, 20, 15, 0, 0, time.UTC)

type storeMock struct {
	mock.Mock
}

func (m *storeMock) Save(ctx context.Context, s analytics.Snapshot) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type fixture struct {
	restaurant *order.Restaurant
	bob        *order.Customer
	ana        *order.Customer
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	restaurant, err := order.NewRestaurant(kernel.NewUUID(), "Cantina da Praia")
	require.NoError(t, err)
	bob, err := order.NewCustomer(kernel.NewUUID(), "Bob")
	require.NoError(t, err)
	ana, err := order.NewCustomer(kernel.NewUUID(), "Ana")
	require.NoError(t, err)
	return fixture{restaurant: restaurant, bob: bob, ana: ana}
}

func (f fixture) order(t *testing.T, customer *order.Customer, items ...order.LineItem) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), customer, f.restaurant, items)
	require.NoError(t, err)
	return o
}

func item(t *testing.T, name string, qty int, price string) order.LineItem {
	t.Helper()
	i, err := order.NewLineItem(name, qty, decimal.RequireFromString(price))
	require.NoError(t, err)
	return i
}

func TestRestaurantAnalytics_AddOrderData(t *testing.T) {
	f := newFixture(t)

	t.Run("should capture order and delivery fields", func(t *testing.T) {
		clock := testutil.NewFakeClock(baseTime)
		a := analytics.NewRestaurantAnalytics(f.restaurant.ID(), clock, nil, testutil.DiscardLogger())
		o := f.order(t, f.bob, item(t, "Pizza", 2, "40"), item(t, "Suco", 1, "8.5"))
		eta := baseTime.Add(30 * time.Minute)

		err := a.AddOrderData(t.Context(), o, &delivery.Snapshot{Status: delivery.OnTheWay, EstimatedAt: &eta})

		require.NoError(t, err)
		snapshots := a.Snapshots()
		require.Len(t, snapshots, 1)
		s := snapshots[0]
		assert.True(t, s.OrderID.IsEqual(o.ID()))
		assert.True(t, s.CustomerID.IsEqual(f.bob.ID()))
		assert.Equal(t, map[string]int{"Pizza": 2, "Suco": 1}, s.Items)
		assert.True(t, decimal.RequireFromString("88.5").Equal(s.Total))
		assert.Equal(t, baseTime, s.RecordedAt)
		assert.Equal(t, "Created", s.OrderStatus)
		assert.True(t, s.HasDelivery())
		assert.Equal(t, delivery.OnTheWay, s.DeliveryStatus)
		require.NotNil(t, s.EstimatedAt)
		assert.Equal(t, eta, *s.EstimatedAt)
		assert.Nil(t, s.DeliveredAt)
	})

	t.Run("should record orders without a delivery", func(t *testing.T) {
		a := analytics.NewRestaurantAnalytics(f.restaurant.ID(), nil, nil, nil)

		require.NoError(t, a.AddOrderData(t.Context(), f.order(t, f.bob, item(t, "Pizza", 1, "40")), nil))

		assert.False(t, a.Snapshots()[0].HasDelivery())
	})

	t.Run("should keep the latest snapshot per order", func(t *testing.T) {
		a := analytics.NewRestaurantAnalytics(f.restaurant.ID(), testutil.NewFakeClock(baseTime), nil, nil)
		o := f.order(t, f.bob, item(t, "Pizza", 1, "40"))

		require.NoError(t, a.AddOrderData(t.Context(), o, &delivery.Snapshot{Status: delivery.Ready}))
		require.NoError(t, a.AddOrderData(t.Context(), o, &delivery.Snapshot{Status: delivery.Delivered}))

		assert.Equal(t, 1, a.TotalOrders())
		assert.Equal(t, delivery.Delivered, a.Snapshots()[0].DeliveryStatus)
	})

	t.Run("should reject orders of another restaurant", func(t *testing.T) {
		a := analytics.NewRestaurantAnalytics(kernel.NewUUID(), nil, nil, nil)

		err := a.AddOrderData(t.Context(), f.order(t, f.bob, item(t, "Pizza", 1, "40")), nil)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, 0, a.TotalOrders())
	})

	t.Run("should forward snapshots to the store", func(t *testing.T) {
		store := &storeMock{}
		o := f.order(t, f.bob, item(t, "Pizza", 1, "40"))
		store.On("Save", mock.Anything, mock.MatchedBy(func(s analytics.Snapshot) bool {
			return s.OrderID.IsEqual(o.ID())
		})).Return(nil).Once()
		a := analytics.NewRestaurantAnalytics(f.restaurant.ID(), nil, store, nil)

		require.NoError(t, a.AddOrderData(t.Context(), o, nil))

		store.AssertExpectations(t)
	})

	t.Run("should report store failures after recording in memory", func(t *testing.T) {
		store := &storeMock{}
		store.On("Save", mock.Anything, mock.Anything).Return(errors.New("connection refused"))
		a := analytics.NewRestaurantAnalytics(f.restaurant.ID(), nil, store, nil)

		err := a.AddOrderData(t.Context(), f.order(t, f.bob, item(t, "Pizza", 1, "40")), nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
		assert.Equal(t, 1, a.TotalOrders())
	})
}

func TestRestaurantAnalytics_Aggregates(t *testing.T) {
	f := newFixture(t)
	clock := testutil.NewFakeClock(baseTime)
	a := analytics.NewRestaurantAnalytics(f.restaurant.ID(), clock, nil, nil)

	t.Run("should return zero values when empty", func(t *testing.T) {
		assert.Equal(t, 0, a.TotalOrders())
		assert.True(t, a.TotalRevenue().IsZero())
		assert.True(t, a.AverageOrderValue().IsZero())
		assert.Empty(t, a.MostPopularItems(5))
		assert.Equal(t, analytics.Retention{}, a.CustomerRetention())
		assert.Equal(t, analytics.Performance{}, a.DeliveryPerformance())
	})

	require.NoError(t, a.AddOrderData(t.Context(), f.order(t, f.bob, item(t, "Pizza", 2, "40"), item(t, "Suco", 1, "10")), nil))
	clock.Advance(time.Hour)
	require.NoError(t, a.AddOrderData(t.Context(), f.order(t, f.bob, item(t, "Suco", 3, "10")), nil))
	clock.Advance(24 * time.Hour)
	require.NoError(t, a.AddOrderData(t.Context(), f.order(t, f.ana, item(t, "Açaí", 1, "20")), nil))

	t.Run("should sum revenue and average it", func(t *testing.T) {
		assert.Equal(t, 3, a.TotalOrders())
		assert.True(t, decimal.NewFromInt(140).Equal(a.TotalRevenue()))
		assert.Equal(t, "46.67", a.AverageOrderValue().StringFixed(2))
	})

	t.Run("should rank items by quantity then name", func(t *testing.T) {
		assert.Equal(t, []analytics.ItemCount{
			{Name: "Suco", Quantity: 4},
			{Name: "Pizza", Quantity: 2},
			{Name: "Açaí", Quantity: 1},
		}, a.MostPopularItems(5))
		assert.Len(t, a.MostPopularItems(2), 2)
	})

	t.Run("should count hours and weekdays", func(t *testing.T) {
		assert.Equal(t, map[int]int{20: 1, 21: 2}, a.PeakHours())
		assert.Equal(t, map[time.Weekday]int{time.Friday: 2, time.Saturday: 1}, a.OrdersByDay())
	})

	t.Run("should compute retention", func(t *testing.T) {
		r := a.CustomerRetention()

		assert.Equal(t, 2, r.UniqueCustomers)
		assert.Equal(t, 1, r.ReturningCustomers)
		assert.InDelta(t, 50.0, r.RetentionRate, 1e-9)
	})
}

func TestRestaurantAnalytics_DeliveryPerformance(t *testing.T) {
	f := newFixture(t)
	a := analytics.NewRestaurantAnalytics(f.restaurant.ID(), testutil.NewFakeClock(baseTime), nil, nil)
	record := func(etaOffset, deliveredOffset time.Duration) {
		eta := baseTime.Add(etaOffset)
		at := baseTime.Add(deliveredOffset)
		require.NoError(t, a.AddOrderData(t.Context(), f.order(t, f.bob, item(t, "Pizza", 1, "40")),
			&delivery.Snapshot{Status: delivery.Delivered, EstimatedAt: &eta, DeliveredAt: &at}))
	}

	record(30*time.Minute, 25*time.Minute)
	record(30*time.Minute, 30*time.Minute)
	record(30*time.Minute, 40*time.Minute)
	record(30*time.Minute, 50*time.Minute)
	require.NoError(t, a.AddOrderData(t.Context(), f.order(t, f.ana, item(t, "Pizza", 1, "40")),
		&delivery.Snapshot{Status: delivery.OnTheWay}))

	p := a.DeliveryPerformance()

	assert.Equal(t, 4, p.TotalDeliveries)
	assert.Equal(t, 2, p.OnTimeDeliveries)
	assert.Equal(t, 2, p.LateDeliveries)
	assert.InDelta(t, 50.0, p.OnTimePercentage, 1e-9)
	assert.InDelta(t, 15.0, p.AverageDelayMinutes, 1e-9)
}

func TestDashboard_Text(t *testing.T) {
	f := newFixture(t)

	t.Run("should explain when there is no data", func(t *testing.T) {
		a := analytics.NewRestaurantAnalytics(f.restaurant.ID(), nil, nil, nil)

		assert.Equal(t, "Não há dados suficientes para gerar o resumo.", a.DashboardSummary("Cantina").Text())
	})

	t.Run("should render headline metrics", func(t *testing.T) {
		a := analytics.NewRestaurantAnalytics(f.restaurant.ID(), testutil.NewFakeClock(baseTime), nil, nil)
		require.NoError(t, a.AddOrderData(t.Context(), f.order(t, f.bob, item(t, "Pizza", 2, "39.90")), nil))

		dashboard := a.DashboardSummary(f.restaurant.Name())
		text := dashboard.Text()

		assert.Equal(t, 1, dashboard.TotalOrders)
		assert.Contains(t, text, "RESUMO DE DESEMPENHO - Cantina da Praia\n")
		assert.Contains(t, text, "- Receita total: R$ 79.80\n")
		assert.Contains(t, text, "- Valor médio por pedido: R$ 79.80\n")
		assert.Contains(t, text, "  - Pizza: 2 unidades\n")
		assert.Contains(t, text, "- Taxa de retenção: 0.00%\n")
		assert.Contains(t, text, "  (0 de 1 clientes retornaram)\n")
	})
}

func TestRegistry(t *testing.T) {
	registry := analytics.NewRegistry(nil, nil, testutil.DiscardLogger())
	id := kernel.NewUUID()

	_, found := registry.Lookup(id)
	assert.False(t, found)

	first := registry.Analytics(id)
	collector := registry.CollectorFor(id)
	looked, found := registry.Lookup(id)

	require.True(t, found)
	assert.Same(t, first, looked)
	assert.Same(t, first, collector)
	assert.NotSame(t, first, registry.Analytics(kernel.NewUUID()))
}

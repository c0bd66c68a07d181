package analytics

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/core/domain/model/order"
	"deliverytracking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemCount is an item name and the total quantity sold.
type ItemCount struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Retention counts customers with one or more orders.
type Retention struct {
	UniqueCustomers    int     `json:"unique_customers"`
	ReturningCustomers int     `json:"returning_customers"`
	RetentionRate      float64 `json:"retention_rate"`
}

// Performance compares actual delivery times against estimates.
type Performance struct {
	TotalDeliveries     int     `json:"total_deliveries"`
	OnTimeDeliveries    int     `json:"on_time_deliveries"`
	LateDeliveries      int     `json:"late_deliveries"`
	OnTimePercentage    float64 `json:"on_time_percentage"`
	AverageDelayMinutes float64 `json:"average_delay_minutes"`
}

// RestaurantAnalytics collects snapshots for one restaurant. It implements
// ports.AnalyticsCollector and is safe for concurrent use.
type RestaurantAnalytics struct {
	mu sync.RWMutex

	restaurantID kernel.UUID
	snapshots    []Snapshot
	byOrder      map[uuid.UUID]int

	clock  kernel.Clock
	store  SnapshotStore
	logger *slog.Logger
}

// NewRestaurantAnalytics creates an empty collector. store may be nil.
func NewRestaurantAnalytics(
	restaurantID kernel.UUID,
	clock kernel.Clock,
	store SnapshotStore,
	logger *slog.Logger,
) *RestaurantAnalytics {
	if clock == nil {
		clock = kernel.SystemClock()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RestaurantAnalytics{
		restaurantID: restaurantID,
		byOrder:      make(map[uuid.UUID]int),
		clock:        clock,
		store:        store,
		logger:       logger.With("component", "RestaurantAnalytics", "restaurant_id", restaurantID.String()),
	}
}

func (a *RestaurantAnalytics) RestaurantID() kernel.UUID {
	return a.restaurantID
}

// AddOrderData records the order, replacing any earlier snapshot of the same
// order, and forwards it to the store.
func (a *RestaurantAnalytics) AddOrderData(ctx context.Context, o *order.Order, d *delivery.Snapshot) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !o.Restaurant().ID().IsEqual(a.restaurantID) {
		return errs.NewValueIsInvalidErrorWithCause("order",
			fmt.Errorf("order %s belongs to restaurant %s", o.ID(), o.Restaurant().ID()))
	}

	snapshot := NewSnapshot(o, d, a.clock.Now())

	a.mu.Lock()
	if i, ok := a.byOrder[snapshot.OrderID.Bytes()]; ok {
		a.snapshots[i] = snapshot
	} else {
		a.byOrder[snapshot.OrderID.Bytes()] = len(a.snapshots)
		a.snapshots = append(a.snapshots, snapshot)
	}
	a.mu.Unlock()

	a.logger.DebugContext(ctx, "order data recorded",
		"order_id", snapshot.OrderID.String(),
		"delivery_status", snapshot.DeliveryStatus.Code(),
	)

	if a.store != nil {
		if err := a.store.Save(ctx, snapshot); err != nil {
			return fmt.Errorf("store snapshot for order %s: %w", snapshot.OrderID, err)
		}
	}
	return nil
}

// Snapshots returns the latest snapshot of each order in first-seen order.
func (a *RestaurantAnalytics) Snapshots() []Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return slices.Clone(a.snapshots)
}

func (a *RestaurantAnalytics) TotalOrders() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.snapshots)
}

func (a *RestaurantAnalytics) TotalRevenue() decimal.Decimal {
	a.mu.RLock()
	defer a.mu.RUnlock()
	total := decimal.Zero
	for _, s := range a.snapshots {
		total = total.Add(s.Total)
	}
	return total
}

// AverageOrderValue is zero when nothing was recorded.
func (a *RestaurantAnalytics) AverageOrderValue() decimal.Decimal {
	count := a.TotalOrders()
	if count == 0 {
		return decimal.Zero
	}
	return a.TotalRevenue().Div(decimal.NewFromInt(int64(count)))
}

// MostPopularItems returns up to limit items by quantity sold, ties broken by name.
func (a *RestaurantAnalytics) MostPopularItems(limit int) []ItemCount {
	a.mu.RLock()
	totals := make(map[string]int)
	for _, s := range a.snapshots {
		for name, qty := range s.Items {
			totals[name] += qty
		}
	}
	a.mu.RUnlock()

	items := make([]ItemCount, 0, len(totals))
	for _, name := range slices.Sorted(maps.Keys(totals)) {
		items = append(items, ItemCount{Name: name, Quantity: totals[name]})
	}
	slices.SortStableFunc(items, func(x, y ItemCount) int {
		return cmp.Compare(y.Quantity, x.Quantity)
	})
	if limit >= 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

// PeakHours counts orders by hour of day (0-23).
func (a *RestaurantAnalytics) PeakHours() map[int]int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	hours := make(map[int]int)
	for _, s := range a.snapshots {
		hours[s.RecordedAt.Hour()]++
	}
	return hours
}

// OrdersByDay counts orders by weekday.
func (a *RestaurantAnalytics) OrdersByDay() map[time.Weekday]int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	days := make(map[time.Weekday]int)
	for _, s := range a.snapshots {
		days[s.RecordedAt.Weekday()]++
	}
	return days
}

// CustomerRetention reports the share of customers with more than one order.
func (a *RestaurantAnalytics) CustomerRetention() Retention {
	a.mu.RLock()
	perCustomer := make(map[uuid.UUID]int)
	for _, s := range a.snapshots {
		perCustomer[s.CustomerID.Bytes()]++
	}
	a.mu.RUnlock()

	r := Retention{UniqueCustomers: len(perCustomer)}
	for _, count := range perCustomer {
		if count > 1 {
			r.ReturningCustomers++
		}
	}
	if r.UniqueCustomers > 0 {
		r.RetentionRate = float64(r.ReturningCustomers) / float64(r.UniqueCustomers) * 100
	}
	return r
}

// DeliveryPerformance looks at orders with both an estimate and an actual
// delivery time. Delivering exactly at the estimate counts as on time.
func (a *RestaurantAnalytics) DeliveryPerformance() Performance {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var p Performance
	var totalDelay time.Duration
	for _, s := range a.snapshots {
		if s.EstimatedAt == nil || s.DeliveredAt == nil {
			continue
		}
		p.TotalDeliveries++
		if s.DeliveredAt.After(*s.EstimatedAt) {
			p.LateDeliveries++
			totalDelay += s.DeliveredAt.Sub(*s.EstimatedAt)
		} else {
			p.OnTimeDeliveries++
		}
	}
	if p.TotalDeliveries == 0 {
		return p
	}
	p.OnTimePercentage = float64(p.OnTimeDeliveries) / float64(p.TotalDeliveries) * 100
	if p.LateDeliveries > 0 {
		p.AverageDelayMinutes = totalDelay.Minutes() / float64(p.LateDeliveries)
	}
	return p
}

package order

import (
	"errors"
	"sort"

	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/pkg/errs"
	"deliverytracking/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is what a Delivery fulfills. The delivery core only reads it: identity
// for tracking links, the customer for notifications, the restaurant for
// analytics, and items plus total for analytics snapshots.
//
// Invariants:
//   - valid externally assigned ID
//   - constructed customer and restaurant
//   - at least one line item
type Order struct {
	id           kernel.UUID
	customer     *Customer
	restaurant   *Restaurant
	items        []LineItem
	instructions string
	status       Status
	guard        guard.ConstructorGuard
}

// NewOrder creates an order in Created status.
//
//	item, _ := order.NewLineItem("Pizza Margherita", 2, decimal.RequireFromString("39.90"))
//	o, err := order.NewOrder(kernel.NewUUID(), customer, restaurant, []order.LineItem{item})
func NewOrder(id kernel.UUID, customer *Customer, restaurant *Restaurant, items []LineItem) (*Order, error) {
	o := &Order{
		status: Created,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setRestaurant(restaurant),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Customer() *Customer {
	return o.customer
}

func (o *Order) Restaurant() *Restaurant {
	return o.restaurant
}

// Items returns a copy of the line items.
func (o *Order) Items() []LineItem {
	out := make([]LineItem, len(o.items))
	copy(out, o.items)
	return out
}

// Quantities sums quantities per item name.
func (o *Order) Quantities() map[string]int {
	out := make(map[string]int, len(o.items))
	for _, item := range o.items {
		out[item.Name()] += item.Quantity()
	}
	return out
}

// ItemNames returns the distinct item names in sorted order.
func (o *Order) ItemNames() []string {
	q := o.Quantities()
	names := make([]string, 0, len(q))
	for name := range q {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Total is the sum of all line item subtotals.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) DeliveryInstructions() string {
	return o.instructions
}

// SetDeliveryInstructions replaces the free-text instructions for the courier.
func (o *Order) SetDeliveryInstructions(instructions string) {
	o.instructions = instructions
}

// Finalize hands the order off for delivery.
func (o *Order) Finalize() error {
	newStatus, err := o.status.Finalize()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer *Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setRestaurant(restaurant *Restaurant) error {
	if err := restaurant.Validate(); err != nil {
		return err
	}
	o.restaurant = restaurant
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

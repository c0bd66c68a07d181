package commands

import (
	"errors"
	"strings"

	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateDeliveryCommandIsNotConstructed = errors.New(
		"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
	)
	ErrCustomerNameIsRequired   = errors.New("customer name is required")
	ErrRestaurantNameIsRequired = errors.New("restaurant name is required")
	ErrItemsAreRequired         = errors.New("at least one item is required")
)

// Item is one ordered line as supplied by the caller.
type Item struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// CreateDeliveryCommand places an order for a customer at a restaurant and
// starts tracking its delivery in "Em preparo".
//
// Example:
//
//	cmd, err := NewCreateDeliveryCommand(
//	    kernel.NewUUID(), kernel.NewUUID(),
//	    "Bob", "Cantina da Praia",
//	    []Item{{Name: "Pizza", Quantity: 2, UnitPrice: decimal.NewFromInt(40)}},
//	    "Portão azul",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create delivery: %w", err)
//	}
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID     kernel.UUID
	orderID        kernel.UUID
	customerName   string
	restaurantName string
	items          []Item
	instructions   string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand validates identifiers, party names and items.
// Item quantities and prices are validated later by the order model.
func NewCreateDeliveryCommand(
	deliveryID kernel.UUID,
	orderID kernel.UUID,
	customerName string,
	restaurantName string,
	items []Item,
	instructions string,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		instructions: instructions,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setOrderID(orderID),
		cmd.setCustomerName(customerName),
		cmd.setRestaurantName(restaurantName),
		cmd.setItems(items),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c CreateDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateDeliveryCommand) CustomerName() string {
	return c.customerName
}

func (c CreateDeliveryCommand) RestaurantName() string {
	return c.restaurantName
}

// Items returns a copy of the ordered lines.
func (c CreateDeliveryCommand) Items() []Item {
	return append([]Item(nil), c.items...)
}

func (c CreateDeliveryCommand) DeliveryInstructions() string {
	return c.instructions
}

func (c *CreateDeliveryCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deliveryID = id
	return nil
}

func (c *CreateDeliveryCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateDeliveryCommand) setCustomerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrCustomerNameIsRequired
	}
	c.customerName = name
	return nil
}

func (c *CreateDeliveryCommand) setRestaurantName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrRestaurantNameIsRequired
	}
	c.restaurantName = name
	return nil
}

func (c *CreateDeliveryCommand) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	c.items = append([]Item(nil), items...)
	return nil
}

package order

import (
	"errors"
	"strings"

	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/pkg/errs"
	"deliverytracking/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned for a Customer not built via NewCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the party that placed an order. Its notification log exists from
// construction on, so "was this customer ever notified" is just Len() > 0.
type Customer struct {
	id            kernel.UUID
	name          string
	notifications *NotificationLog
	guard         guard.ConstructorGuard
}

// NewCustomer validates the identifier and display name.
func NewCustomer(id kernel.UUID, name string) (*Customer, error) {
	c := &Customer{
		notifications: NewNotificationLog(),
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setID(id), c.setName(name)); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() kernel.UUID {
	return c.id
}

func (c *Customer) Name() string {
	return c.name
}

// Notifications returns the customer's notification log.
func (c *Customer) Notifications() *NotificationLog {
	return c.notifications
}

// String returns the display name, used when addressing the customer.
func (c *Customer) String() string {
	return c.name
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.name = name
	return nil
}

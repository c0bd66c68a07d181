package commands

import (
	"errors"
	"strings"

	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/pkg/guard"
)

var (
	ErrAssignDeliveryPersonCommandIsNotConstructed = errors.New(
		"AssignDeliveryPersonCommand must be created via NewAssignDeliveryPersonCommand constructor",
	)
	ErrDeliveryPersonIsRequired = errors.New("delivery person name is required")
)

// AssignDeliveryPersonCommand names the courier of a delivery, which moves it
// to "Entregador designado".
type AssignDeliveryPersonCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	name       string

	guard guard.ConstructorGuard
}

func NewAssignDeliveryPersonCommand(deliveryID kernel.UUID, name string) (AssignDeliveryPersonCommand, error) {
	cmd := AssignDeliveryPersonCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setName(name),
	); err != nil {
		return AssignDeliveryPersonCommand{}, err
	}

	return cmd, nil
}

func (c AssignDeliveryPersonCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryPersonCommandIsNotConstructed)
}

func (c AssignDeliveryPersonCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c AssignDeliveryPersonCommand) Name() string {
	return c.name
}

func (c *AssignDeliveryPersonCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deliveryID = id
	return nil
}

func (c *AssignDeliveryPersonCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrDeliveryPersonIsRequired
	}
	c.name = name
	return nil
}

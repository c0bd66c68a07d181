package commands

import (
	"errors"
	"strings"

	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/pkg/guard"
)

var (
	ErrAddDeliveryNoteCommandIsNotConstructed = errors.New(
		"AddDeliveryNoteCommand must be created via NewAddDeliveryNoteCommand constructor",
	)
	ErrNoteIsRequired = errors.New("note is required")
)

type AddDeliveryNoteCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	note       string

	guard guard.ConstructorGuard
}

func NewAddDeliveryNoteCommand(deliveryID kernel.UUID, note string) (AddDeliveryNoteCommand, error) {
	cmd := AddDeliveryNoteCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setNote(note),
	); err != nil {
		return AddDeliveryNoteCommand{}, err
	}

	return cmd, nil
}

func (c AddDeliveryNoteCommand) Validate() error {
	return c.guard.Validate(ErrAddDeliveryNoteCommandIsNotConstructed)
}

func (c AddDeliveryNoteCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c AddDeliveryNoteCommand) Note() string {
	return c.note
}

func (c *AddDeliveryNoteCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deliveryID = id
	return nil
}

func (c *AddDeliveryNoteCommand) setNote(note string) error {
	if strings.TrimSpace(note) == "" {
		return ErrNoteIsRequired
	}
	c.note = note
	return nil
}

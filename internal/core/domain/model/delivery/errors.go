package delivery

import (
	"errors"
	"fmt"

	"deliverytracking/internal/pkg/errs"
)

var (
	// ErrInvalidStatus is the sentinel behind every InvalidStatusError.
	ErrInvalidStatus = errors.New("invalid delivery status")
	// ErrDeliveryIsNotConstructed is returned for a Delivery not built via NewDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")
	// ErrOrderIsRequired is returned when NewDelivery receives no order.
	ErrOrderIsRequired = errs.NewValueIsRequiredError("order")
)

// InvalidStatusError is returned when an update targets a status outside the
// nine-value enumeration. Value holds the rejected input so callers can show it.
type InvalidStatusError struct {
	Value string
}

func NewInvalidStatusError(value string) *InvalidStatusError {
	return &InvalidStatusError{Value: value}
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("%s: '%s'", ErrInvalidStatus, e.Value)
}

// Unwrap lets errors.Is match both ErrInvalidStatus and errs.ErrValueIsInvalid.
func (e *InvalidStatusError) Unwrap() []error {
	return []error{ErrInvalidStatus, errs.ErrValueIsInvalid}
}

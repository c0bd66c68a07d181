package order

import (
	"fmt"

	"deliverytracking/internal/pkg/errs"
)

// Status is the order's own lifecycle state, independent of the delivery status.
//
//	Created ──> Finalized
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	// Created orders are still being assembled.
	Created
	// Finalized orders have been handed off for delivery.
	Finalized
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Finalized: "Finalized",
	}
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s != Created && s != Finalized {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Finalize transitions Created -> Finalized.
func (s Status) Finalize() (Status, error) {
	if s != Created {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to finalize", s.String()),
		)
	}
	return Finalized, nil
}

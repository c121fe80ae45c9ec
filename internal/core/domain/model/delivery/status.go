package delivery

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the physical fulfillment state of a delivery.
//
// State transitions:
//
//	Assigned ──> InTransit ──> Completed
//
// A delivery is only created once its order has been paid (or manually
// dispatched), so Assigned is the initial state. Completed is terminal.
type Status int

const (
	// UnknownDeliveryStatus represents an invalid or undefined status.
	UnknownDeliveryStatus Status = iota

	// Assigned means a delivery partner has been attached but has not yet
	// picked up the order.
	Assigned

	// InTransit means the partner is carrying the order to the customer.
	InTransit

	// Completed means the order was handed over. Terminal.
	Completed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownDeliveryStatus: "unknown",
		Assigned:              "assigned",
		InTransit:             "in_transit",
		Completed:             "completed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownDeliveryStatus is intentionally excluded
	return map[Status]string{
		Assigned:  "assigned",
		InTransit: "in_transit",
		Completed: "completed",
	}
}

// Validate checks if the Status value is one of the defined delivery states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid delivery status", s),
		)
	}
	return nil
}

// String returns the lowercase status name, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Start transitions the status to InTransit. Only valid from Assigned.
func (s Status) Start() (Status, error) {
	if s != Assigned {
		return 0, transitionError(s, "start")
	}
	return InTransit, nil
}

// Complete transitions the status to Completed. Only valid from InTransit.
func (s Status) Complete() (Status, error) {
	if s != InTransit {
		return 0, transitionError(s, "complete")
	}
	return Completed, nil
}

// ValidateReassign checks that a new partner may still be attached.
// Reassignment is allowed until the delivery completes.
func (s Status) ValidateReassign() error {
	if s == Completed {
		return transitionError(s, "reassign")
	}
	return s.Validate()
}

// transitionError builds the uniform invalid-transition error.
func transitionError(s Status, operation string) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%s is not a valid delivery status to %s", s.String(), operation),
	)
}

package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions so orders follow the marketplace workflow.
//
// State transitions:
//
//	Pending ──> Accepted ──> Paid ──> InDelivery ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. StartDelivery is deliberately
// unguarded: the manual assignment path may push any non-terminal order into
// delivery.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Pending is the initial status when an order is first created.
	// The maker has not yet accepted the order.
	Pending

	// Accepted indicates the maker has accepted the order and it awaits payment.
	Accepted

	// Paid indicates the order has been settled and awaits delivery assignment.
	Paid

	// InDelivery indicates a delivery partner is carrying the order.
	InDelivery

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was withdrawn before payment. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "unknown",
		Pending:       "pending",
		Accepted:      "accepted",
		Paid:          "paid",
		InDelivery:    "in_delivery",
		Delivered:     "delivered",
		Cancelled:     "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Accepted:   "accepted",
		Paid:       "paid",
		InDelivery: "in_delivery",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// Validate checks if the Status value is one of the defined order states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the lowercase status name, or "unknown" for invalid values.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Pending -> Accepted
//
// Returns (0, error) for every other starting state.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return 0, transitionError(s, "accept")
	}
	return Accepted, nil
}

// MarkPaid transitions the status to Paid.
//
// Valid transitions:
//   - Accepted -> Paid
//
// Returns (0, error) for every other starting state, which also makes the
// operation idempotence-safe: a second attempt from Paid is rejected before
// any side effect runs.
func (s Status) MarkPaid() (Status, error) {
	if s != Accepted {
		return 0, transitionError(s, "mark paid")
	}
	return Paid, nil
}

// StartDelivery transitions the status to InDelivery.
//
// The move is allowed from any valid state: the manual assignment path has no
// status guard. Only an invalid status value is rejected.
func (s Status) StartDelivery() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return InDelivery, nil
}

// MarkDelivered transitions the status to Delivered.
//
// Valid transitions:
//   - InDelivery -> Delivered
//
// Returns (0, error) for every other starting state.
func (s Status) MarkDelivered() (Status, error) {
	if s != InDelivery {
		return 0, transitionError(s, "mark delivered")
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Accepted -> Cancelled
//
// Orders that have been paid or are in delivery can no longer be cancelled
// directly; a refund is the only path back out.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Accepted {
		return 0, transitionError(s, "cancel")
	}
	return Cancelled, nil
}

// transitionError builds the uniform invalid-transition error.
func transitionError(s Status, operation string) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%s is not a valid status to %s", s.String(), operation),
	)
}

package payment

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the settlement state of a payment.
//
// State transitions:
//
//	Pending ──┬──> Paid ──> Refunded
//	          └──> Failed
//
// Failed and Refunded are dead ends: no restart transition exists.
type Status int

const (
	// UnknownPaymentStatus represents an invalid or undefined status.
	UnknownPaymentStatus Status = iota

	// Pending is the initial status set when the payment record is created
	// alongside its order.
	Pending

	// Paid indicates the amount settled successfully.
	Paid

	// Failed indicates settlement failed or the order was cancelled. Terminal.
	Failed

	// Refunded indicates a settled amount was returned. Terminal.
	Refunded
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownPaymentStatus: "unknown",
		Pending:              "pending",
		Paid:                 "paid",
		Failed:               "failed",
		Refunded:             "refunded",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownPaymentStatus is intentionally excluded
	return map[Status]string{
		Pending:  "pending",
		Paid:     "paid",
		Failed:   "failed",
		Refunded: "refunded",
	}
}

// Validate checks if the Status value is one of the defined payment states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid payment status", s),
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

// Process transitions the status to Paid. Only valid from Pending.
func (s Status) Process() (Status, error) {
	if s != Pending {
		return 0, transitionError(s, "process")
	}
	return Paid, nil
}

// Fail transitions the status to Failed. Only valid from Pending.
func (s Status) Fail() (Status, error) {
	if s != Pending {
		return 0, transitionError(s, "fail")
	}
	return Failed, nil
}

// Refund transitions the status to Refunded. Only valid from Paid.
func (s Status) Refund() (Status, error) {
	if s != Paid {
		return 0, transitionError(s, "refund")
	}
	return Refunded, nil
}

// transitionError builds the uniform invalid-transition error.
func transitionError(s Status, operation string) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%s is not a valid payment status to %s", s.String(), operation),
	)
}

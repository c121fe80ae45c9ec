package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrProcessPaymentCommandIsNotConstructed = errors.New(
	"ProcessPaymentCommand must be created via a NewProcessPaymentCommand constructor",
)

// ProcessPaymentCommand represents a request to settle a pending payment.
// The payment can be addressed directly by its own identifier or through the
// order it belongs to; both forms resolve to the same settlement flow.
type ProcessPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	orderID   kernel.UUID
	byOrder   bool

	guard guard.ConstructorGuard
}

// NewProcessPaymentCommand creates a command addressing the payment directly.
func NewProcessPaymentCommand(paymentID kernel.UUID) (ProcessPaymentCommand, error) {
	cmd := ProcessPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := paymentID.Validate(); err != nil {
		return ProcessPaymentCommand{}, err
	}
	cmd.paymentID = paymentID

	return cmd, nil
}

// NewProcessPaymentCommandForOrder creates a command addressing the payment
// through its order. Used by the order-centric mark_paid entry point.
func NewProcessPaymentCommandForOrder(orderID kernel.UUID) (ProcessPaymentCommand, error) {
	cmd := ProcessPaymentCommand{
		byOrder: true,
		guard:   guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return ProcessPaymentCommand{}, err
	}
	cmd.orderID = orderID

	return cmd, nil
}

// Validate ensures the command was created through a constructor.
func (c ProcessPaymentCommand) Validate() error {
	return c.guard.Validate(ErrProcessPaymentCommandIsNotConstructed)
}

// PaymentID returns the payment identifier; zero when addressed by order.
func (c ProcessPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// OrderID returns the order identifier; zero when addressed by payment.
func (c ProcessPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ByOrder reports whether the payment is addressed through its order.
func (c ProcessPaymentCommand) ByOrder() bool {
	return c.byOrder
}

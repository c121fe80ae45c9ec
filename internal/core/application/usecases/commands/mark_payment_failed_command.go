package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrMarkPaymentFailedCommandIsNotConstructed = errors.New(
	"MarkPaymentFailedCommand must be created via NewMarkPaymentFailedCommand constructor",
)

// MarkPaymentFailedCommand represents a declined or aborted settlement.
type MarkPaymentFailedCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkPaymentFailedCommand creates a command to fail a pending payment.
func NewMarkPaymentFailedCommand(paymentID kernel.UUID) (MarkPaymentFailedCommand, error) {
	cmd := MarkPaymentFailedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPaymentID(paymentID); err != nil {
		return MarkPaymentFailedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkPaymentFailedCommand) Validate() error {
	return c.guard.Validate(ErrMarkPaymentFailedCommandIsNotConstructed)
}

// PaymentID returns the identifier of the failing payment.
func (c MarkPaymentFailedCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

func (c *MarkPaymentFailedCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrMarkDeliveryInTransitCommandIsNotConstructed = errors.New(
	"MarkDeliveryInTransitCommand must be created via NewMarkDeliveryInTransitCommand constructor",
)

// MarkDeliveryInTransitCommand represents a partner picking up an order.
type MarkDeliveryInTransitCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkDeliveryInTransitCommand creates a command to start a delivery run.
func NewMarkDeliveryInTransitCommand(deliveryID kernel.UUID) (MarkDeliveryInTransitCommand, error) {
	cmd := MarkDeliveryInTransitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDeliveryID(deliveryID); err != nil {
		return MarkDeliveryInTransitCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveryInTransitCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveryInTransitCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery being started.
func (c MarkDeliveryInTransitCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c *MarkDeliveryInTransitCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

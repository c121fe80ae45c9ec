package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via a NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents a finished delivery run. The delivery
// can be addressed directly or through its order; both forms resolve to the
// same completion flow.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	orderID    kernel.UUID
	byOrder    bool

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command addressing the delivery
// directly.
func NewCompleteDeliveryCommand(deliveryID kernel.UUID) (CompleteDeliveryCommand, error) {
	cmd := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deliveryID.Validate(); err != nil {
		return CompleteDeliveryCommand{}, err
	}
	cmd.deliveryID = deliveryID

	return cmd, nil
}

// NewCompleteDeliveryCommandForOrder creates a command addressing the
// delivery through its order. Used by the order-centric mark_delivered entry
// point.
func NewCompleteDeliveryCommandForOrder(orderID kernel.UUID) (CompleteDeliveryCommand, error) {
	cmd := CompleteDeliveryCommand{
		byOrder: true,
		guard:   guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return CompleteDeliveryCommand{}, err
	}
	cmd.orderID = orderID

	return cmd, nil
}

// Validate ensures the command was created through a constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery identifier; zero when addressed by order.
func (c CompleteDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// OrderID returns the order identifier; zero when addressed by delivery.
func (c CompleteDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ByOrder reports whether the delivery is addressed through its order.
func (c CompleteDeliveryCommand) ByOrder() bool {
	return c.byOrder
}

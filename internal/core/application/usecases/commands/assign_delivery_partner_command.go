package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrAssignDeliveryPartnerCommandIsNotConstructed = errors.New(
	"AssignDeliveryPartnerCommand must be created via NewAssignDeliveryPartnerCommand constructor",
)

// AssignDeliveryPartnerCommand represents an explicit request to hand an
// order to a chosen delivery partner, as opposed to the automatic
// first-available assignment that follows payment. The order can be
// addressed directly or through its existing delivery.
type AssignDeliveryPartnerCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	deliveryID kernel.UUID
	byDelivery bool
	partnerID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDeliveryPartnerCommand creates a command to assign a specific
// partner to an order.
func NewAssignDeliveryPartnerCommand(
	orderID kernel.UUID,
	partnerID kernel.UUID,
) (AssignDeliveryPartnerCommand, error) {
	cmd := AssignDeliveryPartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPartnerID(partnerID),
	); err != nil {
		return AssignDeliveryPartnerCommand{}, err
	}

	return cmd, nil
}

// NewAssignDeliveryPartnerCommandForDelivery creates a command addressing
// the order through an existing delivery. Used by the delivery-centric
// reassignment entry point.
func NewAssignDeliveryPartnerCommandForDelivery(
	deliveryID kernel.UUID,
	partnerID kernel.UUID,
) (AssignDeliveryPartnerCommand, error) {
	cmd := AssignDeliveryPartnerCommand{
		byDelivery: true,
		guard:      guard.NewConstructorGuard(),
	}

	if err := deliveryID.Validate(); err != nil {
		return AssignDeliveryPartnerCommand{}, err
	}
	cmd.deliveryID = deliveryID

	if err := cmd.setPartnerID(partnerID); err != nil {
		return AssignDeliveryPartnerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDeliveryPartnerCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryPartnerCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being handed off; zero when
// addressed by delivery.
func (c AssignDeliveryPartnerCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DeliveryID returns the delivery identifier; zero when addressed by order.
func (c AssignDeliveryPartnerCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// ByDelivery reports whether the order is addressed through its delivery.
func (c AssignDeliveryPartnerCommand) ByDelivery() bool {
	return c.byDelivery
}

// PartnerID returns the identifier of the chosen delivery partner.
func (c AssignDeliveryPartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

func (c *AssignDeliveryPartnerCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignDeliveryPartnerCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}

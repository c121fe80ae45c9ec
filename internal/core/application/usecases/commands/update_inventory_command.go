package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateInventoryCommandIsNotConstructed = errors.New(
	"UpdateInventoryCommand must be created via NewUpdateInventoryCommand constructor",
)

// UpdateInventoryCommand represents a stock level change on an existing
// inventory record.
type UpdateInventoryCommand struct { //nolint:recvcheck //using for validation
	inventoryID kernel.UUID
	quantity    int

	guard guard.ConstructorGuard
}

// NewUpdateInventoryCommand creates a command to set a record's stock level.
func NewUpdateInventoryCommand(inventoryID kernel.UUID, quantity int) (UpdateInventoryCommand, error) {
	cmd := UpdateInventoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInventoryID(inventoryID),
		cmd.setQuantity(quantity),
	); err != nil {
		return UpdateInventoryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateInventoryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateInventoryCommandIsNotConstructed)
}

// InventoryID returns the identifier of the record being changed.
func (c UpdateInventoryCommand) InventoryID() kernel.UUID {
	return c.inventoryID
}

// Quantity returns the new stock level.
func (c UpdateInventoryCommand) Quantity() int {
	return c.quantity
}

func (c *UpdateInventoryCommand) setInventoryID(inventoryID kernel.UUID) error {
	if err := inventoryID.Validate(); err != nil {
		return err
	}

	c.inventoryID = inventoryID
	return nil
}

func (c *UpdateInventoryCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return ErrQuantityIsNegative
	}

	c.quantity = quantity
	return nil
}

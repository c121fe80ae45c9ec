package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateInventoryCommandIsNotConstructed = errors.New(
		"CreateInventoryCommand must be created via NewCreateInventoryCommand constructor",
	)
	ErrItemNameIsRequired = errors.New("item name is required")
	ErrQuantityIsNegative = errors.New("quantity must not be negative")
)

// CreateInventoryCommand represents a request to open a stock ledger record
// for a raw material.
type CreateInventoryCommand struct { //nolint:recvcheck //using for validation
	inventoryID       kernel.UUID
	ownerID           kernel.UUID
	itemName          string
	quantity          int
	lowStockThreshold int

	guard guard.ConstructorGuard
}

// NewCreateInventoryCommand creates a command to open an inventory record.
// A zero threshold falls back to the domain default.
func NewCreateInventoryCommand(
	inventoryID kernel.UUID,
	ownerID kernel.UUID,
	itemName string,
	quantity int,
	lowStockThreshold int,
) (CreateInventoryCommand, error) {
	cmd := CreateInventoryCommand{
		lowStockThreshold: lowStockThreshold,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInventoryID(inventoryID),
		cmd.setOwnerID(ownerID),
		cmd.setItemName(itemName),
		cmd.setQuantity(quantity),
	); err != nil {
		return CreateInventoryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateInventoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateInventoryCommandIsNotConstructed)
}

// InventoryID returns the identifier for the new record.
func (c CreateInventoryCommand) InventoryID() kernel.UUID {
	return c.inventoryID
}

// OwnerID returns the identifier of the stock owner.
func (c CreateInventoryCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// ItemName returns the raw material name.
func (c CreateInventoryCommand) ItemName() string {
	return c.itemName
}

// Quantity returns the opening stock level.
func (c CreateInventoryCommand) Quantity() int {
	return c.quantity
}

// LowStockThreshold returns the alert threshold, zero for the default.
func (c CreateInventoryCommand) LowStockThreshold() int {
	return c.lowStockThreshold
}

func (c *CreateInventoryCommand) setInventoryID(inventoryID kernel.UUID) error {
	if err := inventoryID.Validate(); err != nil {
		return err
	}

	c.inventoryID = inventoryID
	return nil
}

func (c *CreateInventoryCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateInventoryCommand) setItemName(itemName string) error {
	if itemName == "" {
		return ErrItemNameIsRequired
	}

	c.itemName = itemName
	return nil
}

func (c *CreateInventoryCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return ErrQuantityIsNegative
	}

	c.quantity = quantity
	return nil
}

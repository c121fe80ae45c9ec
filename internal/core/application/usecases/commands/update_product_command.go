package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrUpdateProductCommandIsNotConstructed = errors.New(
		"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
	)
	ErrNoProductChanges = errors.New("at least one product change is required")
)

// UpdateProductCommand represents a partial edit of an existing product.
// Nil fields are left untouched. A price change propagates to the totals of
// unsettled orders for the product the next time those orders are saved.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	price     *kernel.Money
	stock     *int
	available *bool

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to edit a product's price, stock
// or availability. At least one change must be present.
func NewUpdateProductCommand(
	productID kernel.UUID,
	price *kernel.Money,
	stock *int,
	available *bool,
) (UpdateProductCommand, error) {
	cmd := UpdateProductCommand{
		price:     price,
		stock:     stock,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if price == nil && stock == nil && available == nil {
		return UpdateProductCommand{}, ErrNoProductChanges
	}

	if err := cmd.setProductID(productID); err != nil {
		return UpdateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product being edited.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Price returns the new unit price, or nil when unchanged.
func (c UpdateProductCommand) Price() *kernel.Money {
	return c.price
}

// Stock returns the new stock level, or nil when unchanged.
func (c UpdateProductCommand) Stock() *int {
	return c.stock
}

// Available returns the new availability flag, or nil when unchanged.
func (c UpdateProductCommand) Available() *bool {
	return c.available
}

func (c *UpdateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

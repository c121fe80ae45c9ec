package commands

import (
	"context"

	"marketplace/internal/core/domain/model/inventory"
)

// CreateInventoryCommandHandler opens a new stock ledger record.
// No low stock alert fires on creation, even when the opening quantity is
// already at or under the threshold; alerts are reserved for stock changes.
type CreateInventoryCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewCreateInventoryCommandHandler creates a handler for inventory creation.
func NewCreateInventoryCommandHandler(uowFactory InventoryUoWFactory) CreateInventoryCommandHandler {
	return CreateInventoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the inventory creation command.
func (h *CreateInventoryCommandHandler) Handle(ctx context.Context, cmd CreateInventoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inv, err := inventory.NewInventory(
		cmd.InventoryID(),
		cmd.OwnerID(),
		cmd.ItemName(),
		cmd.Quantity(),
		cmd.LowStockThreshold(),
	)
	if err != nil {
		return err
	}

	if err = uow.InventoryRepository().Add(ctx, inv); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

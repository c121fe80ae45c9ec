package commands

import (
	"context"

	"marketplace/internal/core/domain/model/notification"
)

// UpdateInventoryCommandHandler changes a record's stock level.
// Any update that lands at or under the low stock threshold alerts the
// owner in the same transaction. Creation never alerts; updates always do
// while the level stays low.
type UpdateInventoryCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewUpdateInventoryCommandHandler creates a handler for stock changes.
func NewUpdateInventoryCommandHandler(uowFactory InventoryUoWFactory) UpdateInventoryCommandHandler {
	return UpdateInventoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stock change command.
func (h *UpdateInventoryCommandHandler) Handle(ctx context.Context, cmd UpdateInventoryCommand) error {
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

	inventoryRepo := uow.InventoryRepository()
	inv, err := inventoryRepo.Get(ctx, cmd.InventoryID())
	if err != nil {
		return err
	}

	if err = inv.ChangeQuantity(cmd.Quantity()); err != nil {
		return err
	}

	if err = inventoryRepo.Update(ctx, inv); err != nil {
		return err
	}

	if inv.IsLowStock() {
		err = addNotification(ctx, uow.NotificationRepository(), inv.OwnerID(),
			notification.LowStockMessage(inv.ItemName(), inv.Quantity(), inv.LowStockThreshold()))
		if err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

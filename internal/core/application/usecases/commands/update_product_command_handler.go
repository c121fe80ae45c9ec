package commands

import (
	"context"
)

// UpdateProductCommandHandler handles partial product edits.
type UpdateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for product edits.
func NewUpdateProductCommandHandler(uowFactory CatalogUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product edit command.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
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

	productRepo := uow.ProductRepository()
	p, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if price := cmd.Price(); price != nil {
		if err = p.ChangePrice(*price); err != nil {
			return err
		}
	}
	if stock := cmd.Stock(); stock != nil {
		if err = p.ChangeStock(*stock); err != nil {
			return err
		}
	}
	if available := cmd.Available(); available != nil {
		p.SetAvailable(*available)
	}

	if err = productRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

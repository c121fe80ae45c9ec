package commands

import (
	"context"

	"marketplace/internal/core/domain/model/notification"
)

// AcceptOrderCommandHandler handles the maker's acceptance of a pending
// order. The customer is notified in the same transaction.
type AcceptOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(uowFactory UoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order acceptance command.
// The total is recomputed from the product's current price before saving, as
// every order save path does.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Accept(); err != nil {
		return err
	}

	p, err := uow.ProductRepository().Get(ctx, o.ProductID())
	if err != nil {
		return err
	}
	o.Reprice(p.Price())

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = addNotification(ctx, uow.NotificationRepository(), o.CustomerID(),
		notification.OrderAcceptedMessage(o.ID())); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

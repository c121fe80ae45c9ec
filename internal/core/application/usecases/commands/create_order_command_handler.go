package commands

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/payment"
)

// CreateOrderCommandHandler handles order placement.
// Placing an order derives the total from the product's current price, opens
// a pending payment for that total and notifies the product's maker, all in
// one transaction.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// The product must be listed as available; stock is advisory and does not
// block ordering.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	p, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = p.ValidateOrderable(); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.ProductID(),
		cmd.Quantity(),
		p.Price(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	newPayment, err := payment.NewPayment(kernel.NewUUID(), newOrder.ID(), newOrder.TotalPrice())
	if err != nil {
		return err
	}

	if err = uow.PaymentRepository().Add(ctx, newPayment); err != nil {
		return err
	}

	if err = addNotification(ctx, uow.NotificationRepository(), p.MakerID(),
		notification.NewOrderMessage(newOrder.ID(), newOrder.Quantity(), p.Name())); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/pkg/errs"
)

// CancelOrderCommandHandler handles order cancellation.
// Cancellation is only allowed before payment; it drags the order's pending
// payment down to failed so money can never settle against a dead order.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err = o.Cancel(); err != nil {
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

	if err = h.failPayment(ctx, uow, o.ID(), o.CustomerID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// failPayment forces the order's payment to failed and notifies the customer.
// An order without a payment, or with one that already left the pending
// state, is left alone.
func (h *CancelOrderCommandHandler) failPayment(
	ctx context.Context,
	uow UoW,
	orderID kernel.UUID,
	customerID kernel.UUID,
) error {
	paymentRepo := uow.PaymentRepository()
	pmt, err := paymentRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	if pmt.Status() != payment.Pending {
		return nil
	}

	if err = pmt.MarkFailed(); err != nil {
		return err
	}

	if err = paymentRepo.Update(ctx, pmt); err != nil {
		return err
	}

	return addNotification(ctx, uow.NotificationRepository(), customerID,
		notification.PaymentFailedMessage(orderID))
}

package commands

import (
	"context"

	"marketplace/internal/core/domain/model/notification"
)

// RefundPaymentCommandHandler handles refunds of settled payments.
// A refund voids the order regardless of how far it got, so the order is
// forced to cancelled even from delivery states.
type RefundPaymentCommandHandler struct {
	uowFactory UoWFactory
}

// NewRefundPaymentCommandHandler creates a handler for payment refunds.
func NewRefundPaymentCommandHandler(uowFactory UoWFactory) RefundPaymentCommandHandler {
	return RefundPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the refund command.
func (h *RefundPaymentCommandHandler) Handle(ctx context.Context, cmd RefundPaymentCommand) error {
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

	paymentRepo := uow.PaymentRepository()
	pmt, err := paymentRepo.Get(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}

	if err = pmt.Refund(); err != nil {
		return err
	}

	if err = paymentRepo.Update(ctx, pmt); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, pmt.OrderID())
	if err != nil {
		return err
	}

	if err = o.ForceCancel(); err != nil {
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
		notification.PaymentRefundedMessage(o.ID(), pmt.Amount())); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

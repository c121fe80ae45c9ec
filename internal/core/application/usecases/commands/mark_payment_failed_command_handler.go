package commands

import (
	"context"

	"marketplace/internal/core/domain/model/notification"
)

// MarkPaymentFailedCommandHandler records a failed settlement and notifies
// the customer. The order itself is untouched. A failed payment is terminal;
// there is no restart transition, so the customer's remaining move is to
// cancel the order.
type MarkPaymentFailedCommandHandler struct {
	uowFactory UoWFactory
}

// NewMarkPaymentFailedCommandHandler creates a handler for payment failures.
func NewMarkPaymentFailedCommandHandler(uowFactory UoWFactory) MarkPaymentFailedCommandHandler {
	return MarkPaymentFailedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment failure command.
func (h *MarkPaymentFailedCommandHandler) Handle(
	ctx context.Context,
	cmd MarkPaymentFailedCommand,
) error {
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

	if err = pmt.MarkFailed(); err != nil {
		return err
	}

	if err = paymentRepo.Update(ctx, pmt); err != nil {
		return err
	}

	o, err := uow.OrderRepository().Get(ctx, pmt.OrderID())
	if err != nil {
		return err
	}

	if err = addNotification(ctx, uow.NotificationRepository(), o.CustomerID(),
		notification.PaymentFailedMessage(o.ID())); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

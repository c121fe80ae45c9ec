package commands

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/core/domain/services"
)

// ProcessPaymentResult reports the outcome of a settlement attempt.
// Processed is false when a precondition was not met (payment already
// settled, or the order not yet accepted); that outcome is reported to the
// caller rather than raised as an error. PartnerAssigned is false when the
// payment settled but no delivery partner was free.
type ProcessPaymentResult struct {
	Processed       bool
	PartnerAssigned bool
}

// ProcessPaymentCommandHandler settles a pending payment.
// Settlement stamps a transaction id, marks the order paid, notifies the
// customer and immediately tries to book a delivery partner, all in one
// transaction.
type ProcessPaymentCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.DeliveryDispatcher
}

// NewProcessPaymentCommandHandler creates a handler for payment settlement.
func NewProcessPaymentCommandHandler(
	uowFactory UoWFactory,
	dispatcher services.DeliveryDispatcher,
) ProcessPaymentCommandHandler {
	return ProcessPaymentCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the settlement command.
// An unassignable delivery leaves the order paid for the background
// assignment job to pick up later.
func (h *ProcessPaymentCommandHandler) Handle(
	ctx context.Context,
	cmd ProcessPaymentCommand,
) (ProcessPaymentResult, error) {
	if err := cmd.Validate(); err != nil {
		return ProcessPaymentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ProcessPaymentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()

	var (
		pmt *payment.Payment
		err error
	)
	if cmd.ByOrder() {
		pmt, err = paymentRepo.GetByOrderID(ctx, cmd.OrderID())
	} else {
		pmt, err = paymentRepo.Get(ctx, cmd.PaymentID())
	}
	if err != nil {
		return ProcessPaymentResult{}, err
	}

	if pmt.Status() != payment.Pending {
		return ProcessPaymentResult{}, nil
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, pmt.OrderID())
	if err != nil {
		return ProcessPaymentResult{}, err
	}

	if o.Status() != order.Accepted {
		return ProcessPaymentResult{}, nil
	}

	if err = pmt.Process(kernel.NewUUID().String()); err != nil {
		return ProcessPaymentResult{}, err
	}
	if err = paymentRepo.Update(ctx, pmt); err != nil {
		return ProcessPaymentResult{}, err
	}

	if err = o.MarkPaid(); err != nil {
		return ProcessPaymentResult{}, err
	}

	p, err := uow.ProductRepository().Get(ctx, o.ProductID())
	if err != nil {
		return ProcessPaymentResult{}, err
	}
	o.Reprice(p.Price())

	if err = addNotification(ctx, uow.NotificationRepository(), o.CustomerID(),
		notification.PaymentReceivedMessage(o.ID(), pmt.Amount())); err != nil {
		return ProcessPaymentResult{}, err
	}

	assigned, err := assignFirstAvailablePartner(ctx, uow, h.dispatcher, o)
	if err != nil {
		return ProcessPaymentResult{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return ProcessPaymentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ProcessPaymentResult{}, err
	}

	return ProcessPaymentResult{Processed: true, PartnerAssigned: assigned}, nil
}

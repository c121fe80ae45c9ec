package commands

import (
	"context"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/notification"
)

// CompleteDeliveryCommandHandler closes out a delivery run.
// Completion stamps the delivered time, marks the order delivered, frees the
// partner for new dispatches and notifies the customer. The partner is
// always released on completion, whichever path assigned them.
type CompleteDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery
// completion.
func NewCompleteDeliveryCommandHandler(uowFactory UoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
func (h *CompleteDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteDeliveryCommand,
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

	deliveryRepo := uow.DeliveryRepository()

	var (
		dlv *delivery.Delivery
		err error
	)
	if cmd.ByOrder() {
		dlv, err = deliveryRepo.GetByOrderID(ctx, cmd.OrderID())
	} else {
		dlv, err = deliveryRepo.Get(ctx, cmd.DeliveryID())
	}
	if err != nil {
		return err
	}

	if err = dlv.Complete(); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, dlv); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, dlv.OrderID())
	if err != nil {
		return err
	}

	if err = o.MarkDelivered(); err != nil {
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

	if err = uow.UserRepository().ReleasePartner(ctx, dlv.PartnerID()); err != nil {
		return err
	}

	if err = addNotification(ctx, uow.NotificationRepository(), o.CustomerID(),
		notification.OrderDeliveredMessage(o.ID())); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

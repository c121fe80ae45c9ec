package commands

import (
	"context"

	"marketplace/internal/core/domain/model/notification"
)

// MarkDeliveryInTransitCommandHandler records a partner picking up an order
// and tells the customer their delivery is on the way.
type MarkDeliveryInTransitCommandHandler struct {
	uowFactory UoWFactory
}

// NewMarkDeliveryInTransitCommandHandler creates a handler for delivery
// pickup.
func NewMarkDeliveryInTransitCommandHandler(uowFactory UoWFactory) MarkDeliveryInTransitCommandHandler {
	return MarkDeliveryInTransitCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup command.
func (h *MarkDeliveryInTransitCommandHandler) Handle(
	ctx context.Context,
	cmd MarkDeliveryInTransitCommand,
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
	dlv, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = dlv.MarkInTransit(); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, dlv); err != nil {
		return err
	}

	o, err := uow.OrderRepository().Get(ctx, dlv.OrderID())
	if err != nil {
		return err
	}

	if err = addNotification(ctx, uow.NotificationRepository(), o.CustomerID(),
		notification.DeliveryInTransitMessage(o.ID())); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/services"
)

// AssignDeliveryPartnerCommandHandler handles manual partner assignment.
// The chosen partner must hold the delivery partner role and still be
// available; the availability flip goes through the same conditional update
// as automatic dispatch, so a partner can never be booked twice.
type AssignDeliveryPartnerCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.DeliveryDispatcher
}

// NewAssignDeliveryPartnerCommandHandler creates a handler for manual
// partner assignment.
func NewAssignDeliveryPartnerCommandHandler(
	uowFactory UoWFactory,
	dispatcher services.DeliveryDispatcher,
) AssignDeliveryPartnerCommandHandler {
	return AssignDeliveryPartnerCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the manual assignment command.
// Reassigning an incomplete delivery re-points it at the new partner.
func (h *AssignDeliveryPartnerCommandHandler) Handle(
	ctx context.Context,
	cmd AssignDeliveryPartnerCommand,
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

	var existing *delivery.Delivery
	orderID := cmd.OrderID()
	if cmd.ByDelivery() {
		var err error
		existing, err = deliveryRepo.Get(ctx, cmd.DeliveryID())
		if err != nil {
			return err
		}
		orderID = existing.OrderID()
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if !cmd.ByDelivery() {
		existing, err = orderDelivery(ctx, deliveryRepo, o.ID())
		if err != nil {
			return err
		}
	}

	userRepo := uow.UserRepository()
	partner, err := userRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	if err = userRepo.AcquirePartner(ctx, partner.ID()); err != nil {
		return err
	}

	var displacedID kernel.UUID
	if existing != nil {
		displacedID = existing.PartnerID()
	}

	dlv, err := h.dispatcher.Dispatch(o, existing, partner)
	if err != nil {
		return err
	}

	// Re-pointing the delivery leaves the displaced partner with no active
	// booking, so their availability lock is freed in the same transaction.
	if existing != nil && displacedID != partner.ID() {
		if err = userRepo.ReleasePartner(ctx, displacedID); err != nil {
			return err
		}
	}

	if existing == nil {
		err = deliveryRepo.Add(ctx, dlv)
	} else {
		err = deliveryRepo.Update(ctx, dlv)
	}
	if err != nil {
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

	if err = addNotification(ctx, uow.NotificationRepository(), partner.ID(),
		notification.DeliveryAssignedPartnerMessage(o.ID())); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

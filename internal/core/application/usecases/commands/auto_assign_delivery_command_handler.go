package commands

import (
	"context"

	"marketplace/internal/core/domain/services"
)

// AutoAssignDeliveryCommandHandler books the first available delivery
// partner for an order. Used by the auto_assign entry point and by the
// background job that retries paid orders left without a delivery.
type AutoAssignDeliveryCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.DeliveryDispatcher
}

// NewAutoAssignDeliveryCommandHandler creates a handler for automatic
// partner assignment.
func NewAutoAssignDeliveryCommandHandler(
	uowFactory UoWFactory,
	dispatcher services.DeliveryDispatcher,
) AutoAssignDeliveryCommandHandler {
	return AutoAssignDeliveryCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the automatic assignment command.
// Returns false with a nil error when every partner is busy; the order is
// left untouched and the attempt can be repeated later.
func (h *AutoAssignDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd AutoAssignDeliveryCommand,
) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return false, err
	}

	assigned, err := assignFirstAvailablePartner(ctx, uow, h.dispatcher, o)
	if err != nil {
		return false, err
	}

	if !assigned {
		return false, nil
	}

	p, err := uow.ProductRepository().Get(ctx, o.ProductID())
	if err != nil {
		return false, err
	}
	o.Reprice(p.Price())

	if err = orderRepo.Update(ctx, o); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}

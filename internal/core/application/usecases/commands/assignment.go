package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// assignFirstAvailablePartner walks the available delivery partners in
// registration order and books the first one whose availability lock is won.
// The lock is the conditional update behind AcquirePartner; losing it to a
// concurrent dispatch just moves on to the next candidate, so two orders
// processed at the same time can never share a partner.
//
// On success the delivery is persisted, the order is moved into delivery, and
// both the partner and the customer are notified. Returns false with a nil
// error when no partner could be acquired at all; the order is left untouched
// and the caller reports the outcome instead of failing.
func assignFirstAvailablePartner(
	ctx context.Context,
	uow UoW,
	dispatcher services.DeliveryDispatcher,
	o *order.Order,
) (bool, error) {
	userRepo := uow.UserRepository()

	candidates, err := userRepo.GetAvailablePartners(ctx)
	if err != nil {
		return false, err
	}

	existing, err := orderDelivery(ctx, uow.DeliveryRepository(), o.ID())
	if err != nil {
		return false, err
	}

	var displacedID kernel.UUID
	if existing != nil {
		displacedID = existing.PartnerID()
	}

	for _, candidate := range candidates {
		if err = userRepo.AcquirePartner(ctx, candidate.ID()); err != nil {
			if errors.Is(err, ports.ErrPartnerAlreadyTaken) {
				continue
			}
			return false, err
		}

		dlv, err := dispatcher.Dispatch(o, existing, candidate)
		if err != nil {
			return false, err
		}

		// Re-pointing a delivery frees the displaced partner's lock; the
		// candidate list never contains them, so this cannot race with the
		// acquisition above.
		if existing != nil && displacedID != candidate.ID() {
			if err = userRepo.ReleasePartner(ctx, displacedID); err != nil {
				return false, err
			}
		}

		deliveryRepo := uow.DeliveryRepository()
		if existing == nil {
			err = deliveryRepo.Add(ctx, dlv)
		} else {
			err = deliveryRepo.Update(ctx, dlv)
		}
		if err != nil {
			return false, err
		}

		notificationRepo := uow.NotificationRepository()
		if err = addNotification(ctx, notificationRepo, candidate.ID(),
			notification.DeliveryAssignedPartnerMessage(o.ID())); err != nil {
			return false, err
		}
		if err = addNotification(ctx, notificationRepo, o.CustomerID(),
			notification.DeliveryAssignedCustomerMessage(o.ID(), candidate.Name())); err != nil {
			return false, err
		}

		return true, nil
	}

	return false, nil
}

// orderDelivery loads the order's delivery, mapping "not found" to nil so
// dispatch code can distinguish first assignment from reassignment.
func orderDelivery(
	ctx context.Context,
	repo ports.DeliveryRepository,
	orderID kernel.UUID,
) (*delivery.Delivery, error) {
	dlv, err := repo.GetByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return dlv, nil
}

package services

import (
	"errors"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"
)

// ErrPartnerNotEligible is returned when the given user cannot take a
// delivery, either because the role is not delivery_partner or because the
// partner already holds an active delivery.
var ErrPartnerNotEligible = errors.New("partner is not eligible for delivery")

// DeliveryDispatcher is the domain service that attaches a delivery partner
// to an order. It is the single assignment path for both automatic dispatch
// (after payment) and manual dispatch (admin): both take the partner's
// exclusivity lock, and completion always releases it.
//
// Responsibilities:
//   - Validating the order and the candidate partner
//   - Taking the partner's availability lock (at most one active delivery)
//   - Creating the Delivery record, or re-pointing an existing one
//   - Pushing the order into in_delivery
//
// The dispatcher mutates aggregates only. Persisting them, including the
// conditional update that makes the availability flip safe under concurrent
// dispatch, is the calling handler's job.
type DeliveryDispatcher struct{}

// NewDeliveryDispatcher creates a new DeliveryDispatcher instance.
func NewDeliveryDispatcher() DeliveryDispatcher {
	return DeliveryDispatcher{}
}

// Dispatch attaches partner to the order's delivery and moves the order into
// in_delivery.
//
// Parameters:
//   - o: the order being dispatched (must be valid)
//   - existing: the order's current delivery, or nil when none exists yet
//   - partner: the candidate delivery partner
//
// Returns the created or re-pointed Delivery. ErrPartnerNotEligible wraps
// role and availability rejections so callers can report "no assignment
// made" without treating it as a crash.
func (d DeliveryDispatcher) Dispatch(
	o *order.Order,
	existing *delivery.Delivery,
	partner *user.User,
) (*delivery.Delivery, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := partner.Validate(); err != nil {
		return nil, err
	}

	if partner.Role() != user.DeliveryPartner {
		return nil, errors.Join(ErrPartnerNotEligible, user.ErrNotADeliveryPartner)
	}

	if err := partner.MarkBusy(); err != nil {
		return nil, errors.Join(ErrPartnerNotEligible, err)
	}

	var (
		dlv *delivery.Delivery
		err error
	)
	if existing == nil {
		dlv, err = delivery.NewDelivery(kernel.NewUUID(), o.ID(), partner.ID())
	} else {
		dlv, err = existing, existing.Reassign(partner.ID())
	}
	if err != nil {
		return nil, err
	}

	if err = o.StartDelivery(); err != nil {
		return nil, err
	}

	return dlv, nil
}

// Package delivery provides the Delivery aggregate, the fulfillment record
// attached one-to-one to an order once it is dispatched. It tracks which
// delivery partner carries the order and where the handover stands.
package delivery

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through the NewDelivery or RestoreDelivery factory functions.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// Delivery tracks physical fulfillment of a single order.
//
// Invariants:
//   - Exactly one delivery per order (unique constraint in storage).
//   - A partner is attached from creation; it may be swapped until the
//     delivery completes.
//   - DeliveredAt is stamped exactly once, on completion.
type Delivery struct {
	// id uniquely identifies the delivery
	id kernel.UUID
	// orderID references the fulfilled order (one-to-one)
	orderID kernel.UUID
	// partnerID references the carrying delivery partner
	partnerID kernel.UUID
	// status is the fulfillment state
	status Status
	// assignedAt is stamped at creation
	assignedAt time.Time
	// deliveredAt is stamped on completion
	deliveredAt *time.Time
	// guard ensures the delivery was properly constructed
	guard guard.ConstructorGuard
}

// NewDelivery attaches a delivery partner to an order, opening the record in
// Assigned status with the assignment time stamped.
func NewDelivery(id kernel.UUID, orderID kernel.UUID, partnerID kernel.UUID) (*Delivery, error) {
	d := &Delivery{
		status:     Assigned,
		assignedAt: time.Now().UTC(),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setPartnerID(partnerID),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery aggregate from persistent storage.
func RestoreDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	partnerID kernel.UUID,
	status Status,
	assignedAt time.Time,
	deliveredAt *time.Time,
) (*Delivery, error) {
	d := &Delivery{
		assignedAt:  assignedAt,
		deliveredAt: deliveredAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setPartnerID(partnerID),
		d.setStatus(status),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the fulfilled order's identifier.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// PartnerID returns the carrying partner's identifier.
func (d *Delivery) PartnerID() kernel.UUID {
	return d.partnerID
}

// Status returns the fulfillment state.
func (d *Delivery) Status() Status {
	return d.status
}

// AssignedAt returns the assignment timestamp.
func (d *Delivery) AssignedAt() time.Time {
	return d.assignedAt
}

// DeliveredAt returns the completion timestamp, nil until completed.
func (d *Delivery) DeliveredAt() *time.Time {
	return d.deliveredAt
}

// Reassign swaps the carrying partner and refreshes the assignment time.
// Allowed until the delivery completes.
func (d *Delivery) Reassign(partnerID kernel.UUID) error {
	if err := d.status.ValidateReassign(); err != nil {
		return err
	}
	if err := d.setPartnerID(partnerID); err != nil {
		return err
	}
	d.status = Assigned
	d.assignedAt = time.Now().UTC()
	return nil
}

// MarkInTransit moves the delivery from Assigned to InTransit.
func (d *Delivery) MarkInTransit() error {
	newStatus, err := d.status.Start()
	if err != nil {
		return err
	}
	d.status = newStatus
	return nil
}

// Complete moves the delivery from InTransit to Completed and stamps the
// handover time. The caller pushes the order to delivered and frees the
// partner within the same unit of work.
func (d *Delivery) Complete() error {
	newStatus, err := d.status.Complete()
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	d.status = newStatus
	d.deliveredAt = &now
	return nil
}

// setID validates and sets the delivery's unique identifier.
func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

// setOrderID validates and sets the fulfilled order reference.
func (d *Delivery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	d.orderID = orderID
	return nil
}

// setPartnerID validates and sets the carrying partner reference.
func (d *Delivery) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	d.partnerID = partnerID
	return nil
}

// setStatus validates and sets the status when restoring from storage.
func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

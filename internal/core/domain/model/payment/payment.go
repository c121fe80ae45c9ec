// Package payment provides the Payment aggregate, the ledger entry recording
// monetary settlement for exactly one order. A payment is created
// automatically alongside its order with the order total as its amount; the
// amount never changes afterwards.
package payment

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through the NewPayment or RestorePayment factory functions.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Payment tracks the settlement state of a single order. Settlement here is
// simulated: Process stamps the paid time and records an opaque transaction
// reference without talking to a gateway.
//
// Invariants:
//   - Exactly one payment per order (enforced by a unique constraint in storage).
//   - Amount is set once at creation from the order total.
//   - Failed and Refunded are terminal; no restart transition exists.
type Payment struct {
	// id uniquely identifies the payment
	id kernel.UUID
	// orderID references the owning order (one-to-one)
	orderID kernel.UUID
	// status is the settlement state
	status Status
	// amount is the settled sum, fixed at creation
	amount kernel.Money
	// transactionID is an optional opaque settlement reference
	transactionID string
	// paidAt is stamped when the payment is processed
	paidAt *time.Time
	// createdAt is the ledger entry timestamp
	createdAt time.Time
	// guard ensures the payment was properly constructed
	guard guard.ConstructorGuard
}

// NewPayment opens a pending ledger entry for an order. The amount is taken
// from the order total at creation time and is never recomputed.
func NewPayment(id kernel.UUID, orderID kernel.UUID, amount kernel.Money) (*Payment, error) {
	p := &Payment{
		status:    Pending,
		amount:    amount,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePayment reconstructs a Payment aggregate from persistent storage.
func RestorePayment(
	id kernel.UUID,
	orderID kernel.UUID,
	status Status,
	amount kernel.Money,
	transactionID string,
	paidAt *time.Time,
	createdAt time.Time,
) (*Payment, error) {
	p := &Payment{
		amount:        amount,
		transactionID: transactionID,
		paidAt:        paidAt,
		createdAt:     createdAt,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setStatus(status),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Payment instance was properly constructed.
func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the owning order's identifier.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// Status returns the settlement state.
func (p *Payment) Status() Status {
	return p.status
}

// Amount returns the settled sum fixed at creation.
func (p *Payment) Amount() kernel.Money {
	return p.amount
}

// TransactionID returns the opaque settlement reference, empty until processed.
func (p *Payment) TransactionID() string {
	return p.transactionID
}

// PaidAt returns the settlement timestamp, nil until processed.
func (p *Payment) PaidAt() *time.Time {
	return p.paidAt
}

// CreatedAt returns the ledger entry timestamp.
func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

// Process settles a pending payment, stamping the paid time and recording the
// transaction reference. Only valid from Pending; the caller treats a guard
// rejection as a reported non-fatal outcome, not a crash.
func (p *Payment) Process(transactionID string) error {
	newStatus, err := p.status.Process()
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	p.status = newStatus
	p.transactionID = transactionID
	p.paidAt = &now
	return nil
}

// MarkFailed moves a pending payment to Failed. Terminal.
func (p *Payment) MarkFailed() error {
	newStatus, err := p.status.Fail()
	if err != nil {
		return err
	}
	p.status = newStatus
	return nil
}

// Refund moves a settled payment to Refunded. Terminal. The caller forces the
// owning order to cancelled within the same unit of work.
func (p *Payment) Refund() error {
	newStatus, err := p.status.Refund()
	if err != nil {
		return err
	}
	p.status = newStatus
	return nil
}

// setID validates and sets the payment's unique identifier.
func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setOrderID validates and sets the owning order reference.
func (p *Payment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	p.orderID = orderID
	return nil
}

// setStatus validates and sets the status when restoring from storage.
func (p *Payment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

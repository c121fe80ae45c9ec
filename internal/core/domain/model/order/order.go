package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents a customer's purchase of a product quantity. It is the
// aggregate root that drives the marketplace lifecycle: its status field is
// the state machine every other component (payment ledger, delivery
// dispatcher, notification fan-out) keys off.
//
// Order follows these invariants:
//   - Must have valid customer and product references.
//   - Quantity must be positive.
//   - TotalPrice always equals unit price × quantity; Reprice recomputes the
//     total from the current product price and is invoked before every save,
//     so product price edits propagate to unsettled orders.
//   - Status transitions follow the rules defined on Status.
//
// Order uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the ordering customer
	customerID kernel.UUID

	// productID references the ordered product
	productID kernel.UUID

	// quantity is the ordered unit count (must be positive)
	quantity int

	// totalPrice is the derived total (unit price × quantity)
	totalPrice kernel.Money

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is the immutable creation timestamp
	createdAt time.Time

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Pending status.
//
// The total price is derived from the given unit price and quantity; callers
// pass the product's current price so the derivation stays in one place.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, productID, 3, price)
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	productID kernel.UUID,
	quantity int,
	unitPrice kernel.Money,
) (*Order, error) {
	o := &Order{
		status:    Pending,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setProductID(productID),
		o.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	o.totalPrice = unitPrice.MulInt(o.quantity)
	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// preserving its status, derived total, and creation timestamp.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	productID kernel.UUID,
	quantity int,
	totalPrice kernel.Money,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		totalPrice: totalPrice,
		createdAt:  createdAt,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setProductID(productID),
		o.setQuantity(quantity),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// ProductID returns the ordered product's identifier.
func (o *Order) ProductID() kernel.UUID {
	return o.productID
}

// Quantity returns the ordered unit count.
func (o *Order) Quantity() int {
	return o.quantity
}

// TotalPrice returns the derived order total.
func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the immutable creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Reprice recomputes the total from the current unit price and the ordered
// quantity. Every save path calls this before persisting, which means a
// product price edit retroactively changes the totals of unsettled orders.
// That propagation is intentional behavior inherited from the pricing design;
// the lifecycle tests pin it down so consumers are aware of the consequence.
func (o *Order) Reprice(unitPrice kernel.Money) {
	o.totalPrice = unitPrice.MulInt(o.quantity)
}

// Accept moves the order from Pending to Accepted.
func (o *Order) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// MarkPaid moves the order from Accepted to Paid. Delivery assignment is
// triggered by the caller once this transition succeeds.
func (o *Order) MarkPaid() error {
	newStatus, err := o.status.MarkPaid()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// StartDelivery moves the order into InDelivery. Allowed from any valid
// state; the manual assignment path carries no status guard.
func (o *Order) StartDelivery() error {
	newStatus, err := o.status.StartDelivery()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// MarkDelivered moves the order from InDelivery to Delivered.
func (o *Order) MarkDelivered() error {
	newStatus, err := o.status.MarkDelivered()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Cancel moves the order from Pending or Accepted to Cancelled. The caller
// forces any existing payment to failed as part of the same unit of work.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// ForceCancel moves the order to Cancelled regardless of its current state.
// Only the refund path uses this; a refunded payment voids the order even
// after it left the Pending and Accepted states.
func (o *Order) ForceCancel() error {
	if err := o.status.Validate(); err != nil {
		return err
	}
	o.status = Cancelled
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the customer reference.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setProductID validates and sets the product reference.
func (o *Order) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	o.productID = productID
	return nil
}

// setQuantity validates and sets the ordered unit count.
func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	o.quantity = quantity
	return nil
}

// setStatus validates and sets the status when restoring from storage.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

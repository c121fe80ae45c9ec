package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment ledger
// entries. The one-payment-per-order rule is backed by a unique constraint on
// the order reference.
type PaymentRepository interface {
	// Add persists a new payment to storage.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update persists changes to an existing payment.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// Get retrieves a payment by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// GetByOrderID retrieves the payment owned by the given order.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error)
}

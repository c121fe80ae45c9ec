package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPaidWithoutDelivery retrieves paid orders that have no delivery
	// record yet, the backlog produced when payment settled while every
	// partner was busy. The assignment retry job drains this set.
	GetAllPaidWithoutDelivery(ctx context.Context) ([]*order.Order, error)
}

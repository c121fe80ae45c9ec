package ports

import (
	"context"

	"marketplace/internal/core/domain/model/inventory"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
}

// InventoryRepository defines the persistence contract for raw-material
// inventory records.
type InventoryRepository interface {
	// Add persists a new inventory record to storage.
	Add(ctx context.Context, aggregate *inventory.Inventory) error

	// Update persists changes to an existing inventory record.
	Update(ctx context.Context, aggregate *inventory.Inventory) error

	// Get retrieves an inventory record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*inventory.Inventory, error)
}

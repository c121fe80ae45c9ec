// Package inventoryrepo provides data transfer objects and mapping functions
// for raw-material inventory persistence.
package inventoryrepo

import (
	"time"

	"marketplace/internal/core/domain/model/inventory"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// InventoryDTO represents the database structure for persisting inventory
// records.
type InventoryDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID           uuid.UUID `gorm:"type:uuid;index"`
	ItemName          string
	Quantity          int
	LowStockThreshold int
	UpdatedAt         time.Time
}

// TableName specifies the database table name for inventory entities.
func (InventoryDTO) TableName() string {
	return "inventories"
}

// fromDomain converts an inventory domain aggregate to its database
// representation.
func fromDomain(aggregate *inventory.Inventory) InventoryDTO {
	return InventoryDTO{
		ID:                aggregate.ID().Bytes(),
		OwnerID:           aggregate.OwnerID().Bytes(),
		ItemName:          aggregate.ItemName(),
		Quantity:          aggregate.Quantity(),
		LowStockThreshold: aggregate.LowStockThreshold(),
		UpdatedAt:         aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an inventory domain aggregate.
func toDomain(dto InventoryDTO) (*inventory.Inventory, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return inventory.RestoreInventory(
		id,
		ownerID,
		dto.ItemName,
		dto.Quantity,
		dto.LowStockThreshold,
		dto.UpdatedAt,
	)
}

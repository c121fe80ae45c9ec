// Package inventory provides the Inventory aggregate, a raw-materials ledger
// kept by makers and suppliers. It is independent of the product catalog: a
// product's stock counts sellable units, an inventory record counts the
// ingredients behind them.
package inventory

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// defaultLowStockThreshold is applied when no threshold is given.
const defaultLowStockThreshold = 5

// Domain errors for inventory operations.
var (
	// ErrItemNameIsRequired is returned when creating a record without an item name.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("item_name")
	// ErrInventoryIsNotConstructed is returned when using an improperly initialized Inventory.
	ErrInventoryIsNotConstructed = errors.New("Inventory must be created via NewInventory constructor")
)

// Inventory tracks the on-hand quantity of one raw material for one owner.
//
// The aggregate exposes IsLowStock (quantity <= threshold). Crossing into low
// stock on an update triggers a low-stock notification to the owner; a record
// created already below threshold does not alert, which keeps data seeding
// from spamming owners.
type Inventory struct {
	// id uniquely identifies the inventory record
	id kernel.UUID
	// ownerID references the maker or supplier keeping the ledger
	ownerID kernel.UUID
	// itemName names the tracked raw material
	itemName string
	// quantity is the on-hand count, never negative
	quantity int
	// lowStockThreshold is the alerting boundary
	lowStockThreshold int
	// updatedAt is bumped on every quantity change
	updatedAt time.Time
	// guard ensures the record was properly constructed
	guard guard.ConstructorGuard
}

// NewInventory opens a ledger record for a raw material. A non-positive
// threshold falls back to the default of 5.
func NewInventory(
	id kernel.UUID,
	ownerID kernel.UUID,
	itemName string,
	quantity int,
	lowStockThreshold int,
) (*Inventory, error) {
	if lowStockThreshold < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"low_stock_threshold is invalid",
			fmt.Errorf("%d is negative", lowStockThreshold),
		)
	}
	if lowStockThreshold == 0 {
		lowStockThreshold = defaultLowStockThreshold
	}

	inv := &Inventory{
		lowStockThreshold: lowStockThreshold,
		updatedAt:         time.Now().UTC(),
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		inv.setID(id),
		inv.setOwnerID(ownerID),
		inv.setItemName(itemName),
		inv.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return inv, nil
}

// RestoreInventory reconstructs an Inventory aggregate from persistent storage.
func RestoreInventory(
	id kernel.UUID,
	ownerID kernel.UUID,
	itemName string,
	quantity int,
	lowStockThreshold int,
	updatedAt time.Time,
) (*Inventory, error) {
	inv := &Inventory{
		lowStockThreshold: lowStockThreshold,
		updatedAt:         updatedAt,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		inv.setID(id),
		inv.setOwnerID(ownerID),
		inv.setItemName(itemName),
		inv.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return inv, nil
}

// Validate ensures the Inventory instance was properly constructed.
func (i *Inventory) Validate() error {
	if i == nil {
		return ErrInventoryIsNotConstructed
	}
	return i.guard.Validate(ErrInventoryIsNotConstructed)
}

// ID returns the record's unique identifier.
func (i *Inventory) ID() kernel.UUID {
	return i.id
}

// OwnerID returns the owning maker or supplier.
func (i *Inventory) OwnerID() kernel.UUID {
	return i.ownerID
}

// ItemName returns the tracked raw material's name.
func (i *Inventory) ItemName() string {
	return i.itemName
}

// Quantity returns the on-hand count.
func (i *Inventory) Quantity() int {
	return i.quantity
}

// LowStockThreshold returns the alerting boundary.
func (i *Inventory) LowStockThreshold() int {
	return i.lowStockThreshold
}

// UpdatedAt returns the last change timestamp.
func (i *Inventory) UpdatedAt() time.Time {
	return i.updatedAt
}

// IsLowStock reports whether the quantity has reached the threshold.
func (i *Inventory) IsLowStock() bool {
	return i.quantity <= i.lowStockThreshold
}

// ChangeQuantity replaces the on-hand count and bumps the update time.
// Negative quantities are rejected. The caller checks IsLowStock afterwards
// to decide whether the owner must be alerted.
func (i *Inventory) ChangeQuantity(quantity int) error {
	if err := i.setQuantity(quantity); err != nil {
		return err
	}
	i.updatedAt = time.Now().UTC()
	return nil
}

// setID validates and sets the record's unique identifier.
func (i *Inventory) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

// setOwnerID validates and sets the owner reference.
func (i *Inventory) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	i.ownerID = ownerID
	return nil
}

// setItemName validates and sets the raw material name.
func (i *Inventory) setItemName(itemName string) error {
	if itemName == "" {
		return ErrItemNameIsRequired
	}
	i.itemName = itemName
	return nil
}

// setQuantity validates and sets the on-hand count.
func (i *Inventory) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is negative", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

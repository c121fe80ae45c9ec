package product

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// Domain errors for product operations.
var (
	// ErrNameIsRequired is returned when attempting to create a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
	// ErrProductNotAvailable is returned when an unavailable product is offered to an ordering flow.
	ErrProductNotAvailable = errs.NewValueIsInvalidError("product is not available for ordering")
)

// Product represents a maker-owned sellable item in the catalog.
//
// Business rules:
//   - Stock never goes negative.
//   - Available=false hides the product from ordering regardless of stock.
//   - The price may change at any time; order totals are recomputed from the
//     current price on every order save, so a price edit is visible on
//     not-yet-settled orders.
type Product struct {
	// id uniquely identifies the product
	id kernel.UUID
	// makerID references the owning maker
	makerID kernel.UUID
	// name is the product's display name
	name string
	// description is optional free text
	description string
	// price is the unit price
	price kernel.Money
	// stock is the number of units on hand, never negative
	stock int
	// available controls whether the product can be ordered
	available bool
	// createdAt is the catalog registration timestamp
	createdAt time.Time
	// guard ensures the product was properly constructed
	guard guard.ConstructorGuard
}

// NewProduct registers a new catalog product owned by a maker.
// New products start available with the given stock level.
func NewProduct(
	id kernel.UUID,
	makerID kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	stock int,
) (*Product, error) {
	p := &Product{
		description: description,
		available:   true,
		createdAt:   time.Now().UTC(),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setMakerID(makerID),
		p.setName(name),
		p.setPrice(price),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product aggregate from persistent storage.
func RestoreProduct(
	id kernel.UUID,
	makerID kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	stock int,
	available bool,
	createdAt time.Time,
) (*Product, error) {
	p := &Product{
		description: description,
		available:   available,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setMakerID(makerID),
		p.setName(name),
		p.setPrice(price),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// MakerID returns the owning maker's identifier.
func (p *Product) MakerID() kernel.UUID {
	return p.makerID
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the optional free-text description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the current unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// Stock returns the number of units on hand.
func (p *Product) Stock() int {
	return p.stock
}

// IsAvailable reports whether the product can be ordered.
func (p *Product) IsAvailable() bool {
	return p.available
}

// CreatedAt returns the catalog registration timestamp.
func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// ValidateOrderable returns nil when the product may be offered to an
// ordering flow. Availability alone gates ordering; stock does not.
func (p *Product) ValidateOrderable() error {
	if !p.available {
		return ErrProductNotAvailable
	}
	return nil
}

// ChangePrice updates the unit price. Unpaid order totals pick up the new
// price on their next save.
func (p *Product) ChangePrice(price kernel.Money) error {
	return p.setPrice(price)
}

// ChangeStock replaces the stock level. Negative values are rejected.
func (p *Product) ChangeStock(stock int) error {
	return p.setStock(stock)
}

// SetAvailable shows or hides the product from ordering flows.
func (p *Product) SetAvailable(available bool) {
	p.available = available
}

// setID validates and sets the product's unique identifier.
func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setMakerID validates and sets the owning maker reference.
func (p *Product) setMakerID(makerID kernel.UUID) error {
	if err := makerID.Validate(); err != nil {
		return err
	}
	p.makerID = makerID
	return nil
}

// setName validates and sets the display name.
func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

// setPrice sets the unit price. Money already rejects negative amounts at
// construction, so any Money value is acceptable here.
func (p *Product) setPrice(price kernel.Money) error {
	p.price = price
	return nil
}

// setStock validates and sets the stock level.
func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"stock is invalid",
			fmt.Errorf("%d is negative", stock),
		)
	}
	p.stock = stock
	return nil
}

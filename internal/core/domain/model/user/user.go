package user

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// Domain errors for user operations.
var (
	// ErrNameIsRequired is returned when attempting to create a user without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrUserIsNotConstructed is returned when using an improperly initialized User.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
	// ErrNotADeliveryPartner is returned when availability operations are
	// attempted on a user whose role is not delivery_partner.
	ErrNotADeliveryPartner = errs.NewValueIsInvalidError("user is not a delivery partner")
)

// User represents a marketplace participant. It is an aggregate root carrying
// the participant's identity, fixed role, and, for delivery partners, the
// availability flag the dispatcher uses as an exclusivity lock.
//
// Business rules:
//   - A user must have a valid UUID, a non-empty name, and a valid role.
//   - The role never changes after registration.
//   - Only delivery partners carry a meaningful availability flag; a partner
//     holds at most one active delivery at a time, so taking a delivery flips
//     the flag to false and completing one flips it back.
//   - CurrentLocation is free text and carries no behavior.
type User struct {
	// id uniquely identifies the user
	id kernel.UUID
	// name is the human-readable display name
	name string
	// role is the participant's fixed marketplace role
	role Role
	// isAvailable marks a delivery partner as free to take a delivery
	isAvailable bool
	// currentLocation is an informational free-text location
	currentLocation string
	// createdAt is the registration timestamp
	createdAt time.Time
	// guard ensures the user was properly constructed
	guard guard.ConstructorGuard
}

// NewUser registers a new marketplace participant.
//
// Delivery partners start available; the flag is meaningless for other roles
// and stays false. Validation errors for ID, name, and role are aggregated.
//
// Example:
//
//	partner, err := user.NewUser(kernel.NewUUID(), "Abel", user.DeliveryPartner, "Bole district")
//	if err != nil {
//	    // handle validation error
//	}
func NewUser(id kernel.UUID, name string, role Role, currentLocation string) (*User, error) {
	u := &User{
		currentLocation: currentLocation,
		createdAt:       time.Now().UTC(),
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	u.isAvailable = role == DeliveryPartner
	return u, nil
}

// RestoreUser reconstructs a User aggregate from persistent storage,
// preserving the availability flag and registration timestamp as persisted.
func RestoreUser(
	id kernel.UUID,
	name string,
	role Role,
	isAvailable bool,
	currentLocation string,
	createdAt time.Time,
) (*User, error) {
	u := &User{
		isAvailable:     isAvailable,
		currentLocation: currentLocation,
		createdAt:       createdAt,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User instance was properly constructed through NewUser
// or RestoreUser.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Role returns the user's fixed marketplace role.
func (u *User) Role() Role {
	return u.role
}

// IsAvailable reports whether a delivery partner is free to take a delivery.
// Always false for non-partner roles.
func (u *User) IsAvailable() bool {
	return u.isAvailable
}

// CurrentLocation returns the informational free-text location.
func (u *User) CurrentLocation() string {
	return u.currentLocation
}

// CreatedAt returns the registration timestamp.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// MarkBusy flags a delivery partner as holding an active delivery.
//
// Returns ErrNotADeliveryPartner for other roles, and an invalid-value error
// when the partner is already busy. Persistence must re-check the flag with a
// conditional update so two concurrent assignments cannot both succeed; this
// method only models the aggregate-level rule.
func (u *User) MarkBusy() error {
	if u.role != DeliveryPartner {
		return ErrNotADeliveryPartner
	}
	if !u.isAvailable {
		return errs.NewValueIsInvalidErrorWithCause(
			"availability is invalid",
			fmt.Errorf("partner %s already holds an active delivery", u.id),
		)
	}
	u.isAvailable = false
	return nil
}

// MarkAvailable frees a delivery partner after a completed delivery.
// Freeing an already free partner is a no-op.
func (u *User) MarkAvailable() error {
	if u.role != DeliveryPartner {
		return ErrNotADeliveryPartner
	}
	u.isAvailable = true
	return nil
}

// setID validates and sets the user's unique identifier.
func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

// setName validates and sets the user's display name.
func (u *User) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	u.name = name
	return nil
}

// setRole validates and sets the user's role.
func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

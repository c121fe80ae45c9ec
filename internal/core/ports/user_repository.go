// Package ports defines repository and unit-of-work interfaces for the
// marketplace domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
)

// ErrPartnerAlreadyTaken is returned by AcquirePartner when the conditional
// availability update matched no row, meaning a concurrent dispatch won the
// partner first (or the partner was never available).
var ErrPartnerAlreadyTaken = errors.New("delivery partner is already taken")

// UserRepository defines the persistence contract for user aggregates,
// including the availability handshake that serializes delivery-partner
// acquisition.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user aggregate.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetAvailablePartners retrieves all available delivery partners ordered
	// by registration time, earliest first. The ordering makes first-available
	// selection deterministic.
	GetAvailablePartners(ctx context.Context) ([]*user.User, error)

	// AcquirePartner flips a partner's availability from true to false with a
	// single conditional update. Returns ErrPartnerAlreadyTaken when the flag
	// was no longer true, which is how two concurrent dispatch attempts are
	// prevented from double-booking the same partner. This is the only write
	// path allowed to take the availability lock.
	AcquirePartner(ctx context.Context, id kernel.UUID) error

	// ReleasePartner flips a partner's availability back to true after a
	// completed delivery. Releasing a free partner is a no-op.
	ReleasePartner(ctx context.Context, id kernel.UUID) error
}

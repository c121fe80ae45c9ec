package user_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates_valid_user", func(t *testing.T) {
		id := kernel.NewUUID()

		u, err := user.NewUser(id, "Marta", user.Customer, "Addis Ababa")

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.True(t, u.ID().IsEqual(id))
		assert.Equal(t, "Marta", u.Name())
		assert.Equal(t, user.Customer, u.Role())
		assert.Equal(t, "Addis Ababa", u.CurrentLocation())
		assert.False(t, u.IsAvailable())
	})

	t.Run("delivery_partner_starts_available", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "Abel", user.DeliveryPartner, "")

		require.NoError(t, err)
		assert.True(t, u.IsAvailable())
	})

	t.Run("rejects_empty_name", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "", user.Maker, "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_invalid_role", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "Marta", user.UnknownRole, "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_invalid_id", func(t *testing.T) {
		var zero kernel.UUID
		_, err := user.NewUser(zero, "Marta", user.Customer, "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestUser_Validate(t *testing.T) {
	t.Run("zero_value_is_not_constructed", func(t *testing.T) {
		var u user.User
		require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
	})

	t.Run("nil_user_is_not_constructed", func(t *testing.T) {
		var u *user.User
		require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
	})
}

func TestUser_Availability(t *testing.T) {
	t.Run("mark_busy_takes_the_exclusivity_lock", func(t *testing.T) {
		partner, err := user.NewUser(kernel.NewUUID(), "Abel", user.DeliveryPartner, "")
		require.NoError(t, err)

		require.NoError(t, partner.MarkBusy())
		assert.False(t, partner.IsAvailable())
	})

	t.Run("mark_busy_fails_when_already_busy", func(t *testing.T) {
		partner, err := user.NewUser(kernel.NewUUID(), "Abel", user.DeliveryPartner, "")
		require.NoError(t, err)
		require.NoError(t, partner.MarkBusy())

		require.ErrorIs(t, partner.MarkBusy(), errs.ErrValueIsInvalid)
	})

	t.Run("mark_busy_rejects_non_partners", func(t *testing.T) {
		customer, err := user.NewUser(kernel.NewUUID(), "Marta", user.Customer, "")
		require.NoError(t, err)

		require.ErrorIs(t, customer.MarkBusy(), user.ErrNotADeliveryPartner)
	})

	t.Run("mark_available_frees_the_partner", func(t *testing.T) {
		partner, err := user.NewUser(kernel.NewUUID(), "Abel", user.DeliveryPartner, "")
		require.NoError(t, err)
		require.NoError(t, partner.MarkBusy())

		require.NoError(t, partner.MarkAvailable())
		assert.True(t, partner.IsAvailable())
	})

	t.Run("mark_available_is_idempotent", func(t *testing.T) {
		partner, err := user.NewUser(kernel.NewUUID(), "Abel", user.DeliveryPartner, "")
		require.NoError(t, err)

		require.NoError(t, partner.MarkAvailable())
		assert.True(t, partner.IsAvailable())
	})
}

func TestRestoreUser(t *testing.T) {
	t.Run("preserves_persisted_state", func(t *testing.T) {
		id := kernel.NewUUID()
		createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

		u, err := user.RestoreUser(id, "Abel", user.DeliveryPartner, false, "Bole", createdAt)

		require.NoError(t, err)
		assert.False(t, u.IsAvailable())
		assert.Equal(t, createdAt, u.CreatedAt())
	})
}

func TestRoleFromString(t *testing.T) {
	t.Run("parses_all_valid_roles", func(t *testing.T) {
		for _, name := range []string{"customer", "maker", "delivery_partner", "supplier", "admin"} {
			role, err := user.RoleFromString(name)
			require.NoError(t, err)
			assert.Equal(t, name, role.String())
		}
	})

	t.Run("rejects_unknown_role", func(t *testing.T) {
		_, err := user.RoleFromString("superuser")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

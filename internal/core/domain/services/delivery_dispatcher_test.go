package services_test

import (
	"testing"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPaidOrder(t *testing.T) *order.Order {
	t.Helper()
	price, err := kernel.NewMoneyFromString("10.00")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 1, price)
	require.NoError(t, err)
	require.NoError(t, o.Accept())
	require.NoError(t, o.MarkPaid())
	return o
}

func newPartner(t *testing.T) *user.User {
	t.Helper()
	p, err := user.NewUser(kernel.NewUUID(), "Abel", user.DeliveryPartner, "")
	require.NoError(t, err)
	return p
}

func TestDeliveryDispatcher_Dispatch(t *testing.T) {
	t.Run("creates_delivery_and_moves_order_into_delivery", func(t *testing.T) {
		o := newPaidOrder(t)
		partner := newPartner(t)

		dlv, err := services.NewDeliveryDispatcher().Dispatch(o, nil, partner)

		require.NoError(t, err)
		assert.Equal(t, delivery.Assigned, dlv.Status())
		assert.True(t, dlv.OrderID().IsEqual(o.ID()))
		assert.True(t, dlv.PartnerID().IsEqual(partner.ID()))
		assert.Equal(t, order.InDelivery, o.Status())
		assert.False(t, partner.IsAvailable())
	})

	t.Run("repoints_existing_delivery", func(t *testing.T) {
		o := newPaidOrder(t)
		first := newPartner(t)
		second := newPartner(t)

		dlv, err := services.NewDeliveryDispatcher().Dispatch(o, nil, first)
		require.NoError(t, err)

		dlv, err = services.NewDeliveryDispatcher().Dispatch(o, dlv, second)

		require.NoError(t, err)
		assert.True(t, dlv.PartnerID().IsEqual(second.ID()))
	})

	t.Run("rejects_non_partner_roles", func(t *testing.T) {
		o := newPaidOrder(t)
		customer, err := user.NewUser(kernel.NewUUID(), "Marta", user.Customer, "")
		require.NoError(t, err)

		_, err = services.NewDeliveryDispatcher().Dispatch(o, nil, customer)

		require.ErrorIs(t, err, services.ErrPartnerNotEligible)
		assert.Equal(t, order.Paid, o.Status())
	})

	t.Run("rejects_busy_partner", func(t *testing.T) {
		o := newPaidOrder(t)
		partner := newPartner(t)
		require.NoError(t, partner.MarkBusy())

		_, err := services.NewDeliveryDispatcher().Dispatch(o, nil, partner)

		require.ErrorIs(t, err, services.ErrPartnerNotEligible)
	})
}

package order_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newPendingOrder(t *testing.T, quantity int, price string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), quantity, mustMoney(t, price))
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("derives_total_price_from_price_and_quantity", func(t *testing.T) {
		o := newPendingOrder(t, 3, "10.00")

		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "30.00", o.TotalPrice().String())
		assert.Equal(t, 3, o.Quantity())
		assert.False(t, o.CreatedAt().IsZero())
	})

	t.Run("rejects_zero_quantity", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 0, mustMoney(t, "10.00"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_negative_quantity", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), -2, mustMoney(t, "10.00"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_missing_references", func(t *testing.T) {
		var zero kernel.UUID
		_, err := order.NewOrder(kernel.NewUUID(), zero, kernel.NewUUID(), 1, mustMoney(t, "10.00"))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero_value_is_not_constructed", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil_order_is_not_constructed", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("happy_path_to_delivered", func(t *testing.T) {
		o := newPendingOrder(t, 1, "5.00")

		require.NoError(t, o.Accept())
		require.NoError(t, o.MarkPaid())
		require.NoError(t, o.StartDelivery())
		require.NoError(t, o.MarkDelivered())

		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("mark_paid_requires_acceptance", func(t *testing.T) {
		o := newPendingOrder(t, 1, "5.00")
		require.ErrorIs(t, o.MarkPaid(), errs.ErrValueIsInvalid)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("second_mark_paid_is_rejected_and_leaves_status_paid", func(t *testing.T) {
		o := newPendingOrder(t, 1, "5.00")
		require.NoError(t, o.Accept())
		require.NoError(t, o.MarkPaid())

		require.ErrorIs(t, o.MarkPaid(), errs.ErrValueIsInvalid)
		assert.Equal(t, order.Paid, o.Status())
	})

	t.Run("cancel_from_pending", func(t *testing.T) {
		o := newPendingOrder(t, 1, "5.00")
		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("cancel_from_accepted", func(t *testing.T) {
		o := newPendingOrder(t, 1, "5.00")
		require.NoError(t, o.Accept())
		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("cancel_after_payment_is_rejected", func(t *testing.T) {
		o := newPendingOrder(t, 1, "5.00")
		require.NoError(t, o.Accept())
		require.NoError(t, o.MarkPaid())

		require.ErrorIs(t, o.Cancel(), errs.ErrValueIsInvalid)
		assert.Equal(t, order.Paid, o.Status())
	})
}

func TestOrder_Reprice(t *testing.T) {
	t.Run("total_follows_current_unit_price", func(t *testing.T) {
		o := newPendingOrder(t, 3, "10.00")
		require.Equal(t, "30.00", o.TotalPrice().String())

		o.Reprice(mustMoney(t, "12.00"))

		assert.Equal(t, "36.00", o.TotalPrice().String())
	})

	// A price edit after acceptance still rewrites the running total on the
	// next save. Downstream consumers reading historical totals must treat
	// anything before the paid state as mutable.
	t.Run("price_edit_after_acceptance_changes_unsettled_total", func(t *testing.T) {
		o := newPendingOrder(t, 2, "10.00")
		require.NoError(t, o.Accept())

		o.Reprice(mustMoney(t, "99.99"))

		assert.Equal(t, "199.98", o.TotalPrice().String())
		assert.Equal(t, order.Accepted, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("preserves_persisted_state", func(t *testing.T) {
		id := kernel.NewUUID()
		createdAt := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

		o, err := order.RestoreOrder(
			id, kernel.NewUUID(), kernel.NewUUID(), 4,
			mustMoney(t, "40.00"), order.Paid, createdAt,
		)

		require.NoError(t, err)
		assert.Equal(t, order.Paid, o.Status())
		assert.Equal(t, "40.00", o.TotalPrice().String())
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 1,
			mustMoney(t, "1.00"), order.UnknownStatus, time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_ForceCancel(t *testing.T) {
	t.Run("voids_a_delivered_order", func(t *testing.T) {
		o := newPendingOrder(t, 1, "10.00")
		require.NoError(t, o.Accept())
		require.NoError(t, o.MarkPaid())
		require.NoError(t, o.StartDelivery())
		require.NoError(t, o.MarkDelivered())

		require.NoError(t, o.ForceCancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("voids_a_paid_order", func(t *testing.T) {
		o := newPendingOrder(t, 1, "10.00")
		require.NoError(t, o.Accept())
		require.NoError(t, o.MarkPaid())

		require.NoError(t, o.ForceCancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})
}

package payment_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/payment"
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

func newPendingPayment(t *testing.T, amount string) *payment.Payment {
	t.Helper()
	p, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(), mustMoney(t, amount))
	require.NoError(t, err)
	return p
}

func TestNewPayment(t *testing.T) {
	t.Run("opens_pending_entry_with_fixed_amount", func(t *testing.T) {
		p := newPendingPayment(t, "30.00")

		require.NoError(t, p.Validate())
		assert.Equal(t, payment.Pending, p.Status())
		assert.Equal(t, "30.00", p.Amount().String())
		assert.Empty(t, p.TransactionID())
		assert.Nil(t, p.PaidAt())
	})

	t.Run("rejects_missing_order_reference", func(t *testing.T) {
		var zero kernel.UUID
		_, err := payment.NewPayment(kernel.NewUUID(), zero, mustMoney(t, "1.00"))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestPayment_Process(t *testing.T) {
	t.Run("settles_pending_payment", func(t *testing.T) {
		p := newPendingPayment(t, "30.00")

		require.NoError(t, p.Process("txn-001"))

		assert.Equal(t, payment.Paid, p.Status())
		assert.Equal(t, "txn-001", p.TransactionID())
		require.NotNil(t, p.PaidAt())
	})

	t.Run("second_process_is_rejected", func(t *testing.T) {
		p := newPendingPayment(t, "30.00")
		require.NoError(t, p.Process("txn-001"))

		require.ErrorIs(t, p.Process("txn-002"), errs.ErrValueIsInvalid)
		assert.Equal(t, "txn-001", p.TransactionID())
	})
}

func TestPayment_MarkFailed(t *testing.T) {
	t.Run("fails_pending_payment", func(t *testing.T) {
		p := newPendingPayment(t, "30.00")

		require.NoError(t, p.MarkFailed())
		assert.Equal(t, payment.Failed, p.Status())
	})

	t.Run("failed_is_a_dead_end", func(t *testing.T) {
		p := newPendingPayment(t, "30.00")
		require.NoError(t, p.MarkFailed())

		require.ErrorIs(t, p.Process("txn"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, p.Refund(), errs.ErrValueIsInvalid)
	})
}

func TestPayment_Refund(t *testing.T) {
	t.Run("refunds_settled_payment", func(t *testing.T) {
		p := newPendingPayment(t, "30.00")
		require.NoError(t, p.Process("txn-001"))

		require.NoError(t, p.Refund())
		assert.Equal(t, payment.Refunded, p.Status())
	})

	t.Run("cannot_refund_unsettled_payment", func(t *testing.T) {
		p := newPendingPayment(t, "30.00")
		require.ErrorIs(t, p.Refund(), errs.ErrValueIsInvalid)
	})

	t.Run("refunded_is_a_dead_end", func(t *testing.T) {
		p := newPendingPayment(t, "30.00")
		require.NoError(t, p.Process("txn-001"))
		require.NoError(t, p.Refund())

		require.ErrorIs(t, p.Process("txn"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, p.MarkFailed(), errs.ErrValueIsInvalid)
	})
}

func TestPaymentStatus_String(t *testing.T) {
	cases := map[payment.Status]string{
		payment.Pending:           "pending",
		payment.Paid:              "paid",
		payment.Failed:            "failed",
		payment.Refunded:          "refunded",
		payment.UnknownPaymentStatus: "unknown",
	}
	for status, expected := range cases {
		assert.Equal(t, expected, status.String())
	}
}

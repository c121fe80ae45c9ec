package product_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
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

func TestNewProduct(t *testing.T) {
	t.Run("creates_available_product", func(t *testing.T) {
		id := kernel.NewUUID()
		makerID := kernel.NewUUID()

		p, err := product.NewProduct(id, makerID, "Injera batch", "sourdough flatbread", mustMoney(t, "10.00"), 20)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.True(t, p.MakerID().IsEqual(makerID))
		assert.True(t, p.IsAvailable())
		assert.Equal(t, 20, p.Stock())
		assert.Equal(t, "10.00", p.Price().String())
	})

	t.Run("rejects_empty_name", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "", "", mustMoney(t, "1.00"), 1)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_negative_stock", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Injera batch", "", mustMoney(t, "1.00"), -1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestProduct_ValidateOrderable(t *testing.T) {
	t.Run("available_product_is_orderable", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Injera batch", "", mustMoney(t, "10.00"), 5)
		require.NoError(t, err)

		require.NoError(t, p.ValidateOrderable())
	})

	t.Run("hidden_product_is_not_orderable_regardless_of_stock", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Injera batch", "", mustMoney(t, "10.00"), 100)
		require.NoError(t, err)

		p.SetAvailable(false)

		require.ErrorIs(t, p.ValidateOrderable(), product.ErrProductNotAvailable)
	})
}

func TestProduct_ChangeStock(t *testing.T) {
	t.Run("accepts_zero", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Injera batch", "", mustMoney(t, "10.00"), 5)
		require.NoError(t, err)

		require.NoError(t, p.ChangeStock(0))
		assert.Equal(t, 0, p.Stock())
	})

	t.Run("rejects_negative", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Injera batch", "", mustMoney(t, "10.00"), 5)
		require.NoError(t, err)

		require.ErrorIs(t, p.ChangeStock(-3), errs.ErrValueIsInvalid)
		assert.Equal(t, 5, p.Stock())
	})
}

func TestProduct_ChangePrice(t *testing.T) {
	t.Run("updates_unit_price", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Injera batch", "", mustMoney(t, "10.00"), 5)
		require.NoError(t, err)

		require.NoError(t, p.ChangePrice(mustMoney(t, "12.50")))
		assert.Equal(t, "12.50", p.Price().String())
	})
}

package commands_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newTestProduct(t *testing.T, makerID kernel.UUID, price string) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), makerID, "Sourdough Loaf", "slow fermented", mustMoney(t, price), 10)
	require.NoError(t, err)
	return p
}

func newTestOrder(t *testing.T, customerID, productID kernel.UUID, quantity int, price string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), customerID, productID, quantity, mustMoney(t, price))
	require.NoError(t, err)
	return o
}

func newAcceptedOrder(t *testing.T, customerID, productID kernel.UUID, quantity int, price string) *order.Order {
	t.Helper()
	o := newTestOrder(t, customerID, productID, quantity, price)
	require.NoError(t, o.Accept())
	return o
}

func newTestPayment(t *testing.T, orderID kernel.UUID, amount string) *payment.Payment {
	t.Helper()
	p, err := payment.NewPayment(kernel.NewUUID(), orderID, mustMoney(t, amount))
	require.NoError(t, err)
	return p
}

func newTestPartner(t *testing.T, name string) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), name, user.DeliveryPartner, "Old Town")
	require.NoError(t, err)
	return u
}

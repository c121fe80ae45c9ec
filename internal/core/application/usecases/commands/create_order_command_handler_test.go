package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	makerID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	testProduct := newTestProduct(t, makerID, "12.50")

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customerID, testProduct.ID(), 3)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	orderRepo := new(MockOrderRepository)
	paymentRepo := new(MockPaymentRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)
	uow.On("ProductRepository").Return(productRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("PaymentRepository").Return(paymentRepo)
	uow.On("NotificationRepository").Return(notificationRepo)

	productRepo.On("Get", ctx, testProduct.ID()).Return(testProduct, nil).Once()
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	paymentRepo.On("Add", ctx, mock.AnythingOfType("*payment.Payment")).Return(nil).Once()
	notificationRepo.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	paymentRepo.AssertExpectations(t)
	notificationRepo.AssertExpectations(t)
	uow.AssertExpectations(t)

	// The order total is derived from the product price, the payment opens
	// pending for the same amount, and the maker gets the notification.
	addedOrder := orderRepo.Calls[0].Arguments[1].(*order.Order)
	assert.Equal(t, order.Pending, addedOrder.Status())
	assert.Equal(t, "37.50", addedOrder.TotalPrice().String())

	addedPayment := paymentRepo.Calls[0].Arguments[1].(*payment.Payment)
	assert.Equal(t, payment.Pending, addedPayment.Status())
	assert.True(t, addedPayment.Amount().IsEqual(addedOrder.TotalPrice()))
	assert.Equal(t, addedOrder.ID(), addedPayment.OrderID())

	addedNotification := notificationRepo.Calls[0].Arguments[1].(*notification.Notification)
	assert.Equal(t, makerID, addedNotification.UserID())
	assert.False(t, addedNotification.IsRead())
}

func TestCreateOrderCommandHandler_Handle_ProductNotOrderable(t *testing.T) {
	ctx := t.Context()

	testProduct := newTestProduct(t, kernel.NewUUID(), "8.00")
	testProduct.SetAvailable(false)

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), testProduct.ID(), 1)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)
	uow.On("ProductRepository").Return(productRepo)
	productRepo.On("Get", ctx, testProduct.ID()).Return(testProduct, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, product.ErrProductNotAvailable)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()

	factory := new(MockUoWFactory)
	handler := commands.NewCreateOrderCommandHandler(factory)

	err := handler.Handle(ctx, commands.CreateOrderCommand{})

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_OutOfStockStillOrderable(t *testing.T) {
	ctx := t.Context()

	// Stock is advisory: a listed product with zero stock can still be
	// ordered.
	makerID := kernel.NewUUID()
	testProduct, err := product.NewProduct(
		kernel.NewUUID(), makerID, "Chili Oil", "", mustMoney(t, "6.00"), 0,
	)
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), testProduct.ID(), 2)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	orderRepo := new(MockOrderRepository)
	paymentRepo := new(MockPaymentRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)
	uow.On("ProductRepository").Return(productRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("PaymentRepository").Return(paymentRepo)
	uow.On("NotificationRepository").Return(notificationRepo)

	productRepo.On("Get", ctx, testProduct.ID()).Return(testProduct, nil).Once()
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	paymentRepo.On("Add", ctx, mock.AnythingOfType("*payment.Payment")).Return(nil).Once()
	notificationRepo.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
}

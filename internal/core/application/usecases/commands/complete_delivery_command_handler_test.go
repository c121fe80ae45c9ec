package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newInDeliveryOrder(t *testing.T, productID kernel.UUID) *order.Order {
	t.Helper()
	o := newAcceptedOrder(t, kernel.NewUUID(), productID, 1, "10.00")
	require.NoError(t, o.MarkPaid())
	require.NoError(t, o.StartDelivery())
	return o
}

func TestCompleteDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testProduct := newTestProduct(t, kernel.NewUUID(), "10.00")
	testOrder := newInDeliveryOrder(t, testProduct.ID())
	partnerID := kernel.NewUUID()
	testDelivery, err := delivery.NewDelivery(kernel.NewUUID(), testOrder.ID(), partnerID)
	require.NoError(t, err)
	require.NoError(t, testDelivery.MarkInTransit())

	cmd, err := commands.NewCompleteDeliveryCommand(testDelivery.ID())
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	productRepo := new(MockProductRepository)
	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)
	uow.On("UserRepository").Return(userRepo)
	uow.On("ProductRepository").Return(productRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("NotificationRepository").Return(notificationRepo)

	deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil).Once()
	deliveryRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once()
	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	productRepo.On("Get", ctx, testProduct.ID()).Return(testProduct, nil).Once()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	userRepo.On("ReleasePartner", ctx, partnerID).Return(nil).Once()
	notificationRepo.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Completed, testDelivery.Status())
	assert.NotNil(t, testDelivery.DeliveredAt())
	assert.Equal(t, order.Delivered, testOrder.Status())

	userRepo.AssertExpectations(t)
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteDeliveryCommandHandler_Handle_ByOrder(t *testing.T) {
	ctx := t.Context()

	testProduct := newTestProduct(t, kernel.NewUUID(), "10.00")
	testOrder := newInDeliveryOrder(t, testProduct.ID())
	partnerID := kernel.NewUUID()
	testDelivery, err := delivery.NewDelivery(kernel.NewUUID(), testOrder.ID(), partnerID)
	require.NoError(t, err)
	require.NoError(t, testDelivery.MarkInTransit())

	cmd, err := commands.NewCompleteDeliveryCommandForOrder(testOrder.ID())
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	productRepo := new(MockProductRepository)
	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)
	uow.On("UserRepository").Return(userRepo)
	uow.On("ProductRepository").Return(productRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("NotificationRepository").Return(notificationRepo)

	deliveryRepo.On("GetByOrderID", ctx, testOrder.ID()).Return(testDelivery, nil).Once()
	deliveryRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once()
	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	productRepo.On("Get", ctx, testProduct.ID()).Return(testProduct, nil).Once()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	userRepo.On("ReleasePartner", ctx, partnerID).Return(nil).Once()
	notificationRepo.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Completed, testDelivery.Status())
	deliveryRepo.AssertExpectations(t)
}

func TestCompleteDeliveryCommandHandler_Handle_AlreadyCompleted(t *testing.T) {
	ctx := t.Context()

	testOrder := newInDeliveryOrder(t, kernel.NewUUID())
	testDelivery, err := delivery.NewDelivery(kernel.NewUUID(), testOrder.ID(), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, testDelivery.MarkInTransit())
	require.NoError(t, testDelivery.Complete())

	cmd, err := commands.NewCompleteDeliveryCommand(testDelivery.ID())
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", ctx)
}

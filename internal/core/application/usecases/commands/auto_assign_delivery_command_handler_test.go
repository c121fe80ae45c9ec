package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPaidOrder(t *testing.T, productID kernel.UUID) *order.Order {
	t.Helper()
	o := newAcceptedOrder(t, kernel.NewUUID(), productID, 1, "10.00")
	require.NoError(t, o.MarkPaid())
	return o
}

func TestAutoAssignDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testProduct := newTestProduct(t, kernel.NewUUID(), "10.00")
	testOrder := newPaidOrder(t, testProduct.ID())
	partner := newTestPartner(t, "Lena")

	cmd, err := commands.NewAutoAssignDeliveryCommand(testOrder.ID())
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

	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	userRepo.On("GetAvailablePartners", ctx).Return([]*user.User{partner}, nil).Once()
	deliveryRepo.On("GetByOrderID", ctx, testOrder.ID()).Return(nil, errs.ErrObjectNotFound).Once()
	userRepo.On("AcquirePartner", ctx, partner.ID()).Return(nil).Once()
	deliveryRepo.On("Add", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once()
	notificationRepo.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil).Twice()
	productRepo.On("Get", ctx, testProduct.ID()).Return(testProduct, nil).Once()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAutoAssignDeliveryCommandHandler(factory, services.NewDeliveryDispatcher())
	assigned, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, assigned)
	assert.Equal(t, order.InDelivery, testOrder.Status())
	deliveryRepo.AssertExpectations(t)
	notificationRepo.AssertExpectations(t)
}

func TestAutoAssignDeliveryCommandHandler_Handle_NoPartners(t *testing.T) {
	ctx := t.Context()

	testOrder := newPaidOrder(t, kernel.NewUUID())

	cmd, err := commands.NewAutoAssignDeliveryCommand(testOrder.ID())
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)
	uow.On("UserRepository").Return(userRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("DeliveryRepository").Return(deliveryRepo)

	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	userRepo.On("GetAvailablePartners", ctx).Return([]*user.User{}, nil).Once()
	deliveryRepo.On("GetByOrderID", ctx, testOrder.ID()).Return(nil, errs.ErrObjectNotFound).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAutoAssignDeliveryCommandHandler(factory, services.NewDeliveryDispatcher())
	assigned, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, assigned)
	assert.Equal(t, order.Paid, testOrder.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAutoAssignDeliveryCommandHandler_Handle_ReassignmentFreesDisplacedPartner(t *testing.T) {
	ctx := t.Context()

	testProduct := newTestProduct(t, kernel.NewUUID(), "10.00")
	testOrder := newInDeliveryOrder(t, testProduct.ID())
	firstPartnerID := kernel.NewUUID()
	existing, err := delivery.NewDelivery(kernel.NewUUID(), testOrder.ID(), firstPartnerID)
	require.NoError(t, err)

	replacement := newTestPartner(t, "Marco")

	cmd, err := commands.NewAutoAssignDeliveryCommand(testOrder.ID())
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

	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	userRepo.On("GetAvailablePartners", ctx).Return([]*user.User{replacement}, nil).Once()
	deliveryRepo.On("GetByOrderID", ctx, testOrder.ID()).Return(existing, nil).Once()
	userRepo.On("AcquirePartner", ctx, replacement.ID()).Return(nil).Once()
	userRepo.On("ReleasePartner", ctx, firstPartnerID).Return(nil).Once()
	deliveryRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once()
	notificationRepo.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil).Twice()
	productRepo.On("Get", ctx, testProduct.ID()).Return(testProduct, nil).Once()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAutoAssignDeliveryCommandHandler(factory, services.NewDeliveryDispatcher())
	assigned, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, assigned)
	assert.Equal(t, replacement.ID(), existing.PartnerID())

	// Re-pointing the delivery must hand the displaced partner's
	// availability lock back, or the dispatch pool shrinks for good.
	userRepo.AssertCalled(t, "ReleasePartner", ctx, firstPartnerID)
	userRepo.AssertExpectations(t)
	deliveryRepo.AssertExpectations(t)
}

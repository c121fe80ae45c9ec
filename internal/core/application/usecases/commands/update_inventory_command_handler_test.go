package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/inventory"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateInventoryCommandHandler_Handle_LowStockAlert(t *testing.T) {
	ctx := t.Context()

	ownerID := kernel.NewUUID()
	inv, err := inventory.NewInventory(kernel.NewUUID(), ownerID, "rye flour", 10, 5)
	require.NoError(t, err)

	cmd, err := commands.NewUpdateInventoryCommand(inv.ID(), 3)
	require.NoError(t, err)

	inventoryRepo := new(MockInventoryRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)
	uow.On("InventoryRepository").Return(inventoryRepo)
	uow.On("NotificationRepository").Return(notificationRepo)

	inventoryRepo.On("Get", ctx, inv.ID()).Return(inv, nil).Once()
	inventoryRepo.On("Update", ctx, mock.AnythingOfType("*inventory.Inventory")).Return(nil).Once()
	notificationRepo.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	factory := new(MockInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateInventoryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 3, inv.Quantity())

	alert := notificationRepo.Calls[0].Arguments[1].(*notification.Notification)
	assert.Equal(t, ownerID, alert.UserID())
	assert.Equal(t, "Low stock: rye flour is down to 3 (threshold 5)", alert.Message())

	inventoryRepo.AssertExpectations(t)
	notificationRepo.AssertExpectations(t)
}

func TestUpdateInventoryCommandHandler_Handle_AboveThresholdNoAlert(t *testing.T) {
	ctx := t.Context()

	inv, err := inventory.NewInventory(kernel.NewUUID(), kernel.NewUUID(), "rye flour", 10, 5)
	require.NoError(t, err)

	cmd, err := commands.NewUpdateInventoryCommand(inv.ID(), 8)
	require.NoError(t, err)

	inventoryRepo := new(MockInventoryRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)
	uow.On("InventoryRepository").Return(inventoryRepo)
	uow.On("NotificationRepository").Return(notificationRepo)

	inventoryRepo.On("Get", ctx, inv.ID()).Return(inv, nil).Once()
	inventoryRepo.On("Update", ctx, mock.AnythingOfType("*inventory.Inventory")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	factory := new(MockInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateInventoryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	notificationRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
}

func TestUpdateInventoryCommandHandler_Handle_ExactThresholdAlerts(t *testing.T) {
	ctx := t.Context()

	inv, err := inventory.NewInventory(kernel.NewUUID(), kernel.NewUUID(), "sea salt", 20, 5)
	require.NoError(t, err)

	cmd, err := commands.NewUpdateInventoryCommand(inv.ID(), 5)
	require.NoError(t, err)

	inventoryRepo := new(MockInventoryRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)
	uow.On("InventoryRepository").Return(inventoryRepo)
	uow.On("NotificationRepository").Return(notificationRepo)

	inventoryRepo.On("Get", ctx, inv.ID()).Return(inv, nil).Once()
	inventoryRepo.On("Update", ctx, mock.AnythingOfType("*inventory.Inventory")).Return(nil).Once()
	notificationRepo.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	factory := new(MockInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateInventoryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	notificationRepo.AssertExpectations(t)
}

func TestCreateInventoryCommandHandler_Handle_NoAlertOnFirstSave(t *testing.T) {
	ctx := t.Context()

	// Opening a record already under the threshold does not alert; only
	// stock changes do.
	cmd, err := commands.NewCreateInventoryCommand(kernel.NewUUID(), kernel.NewUUID(), "saffron", 1, 5)
	require.NoError(t, err)

	inventoryRepo := new(MockInventoryRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)
	uow.On("InventoryRepository").Return(inventoryRepo)
	inventoryRepo.On("Add", ctx, mock.AnythingOfType("*inventory.Inventory")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	factory := new(MockInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateInventoryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	notificationRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
	inventoryRepo.AssertExpectations(t)
}

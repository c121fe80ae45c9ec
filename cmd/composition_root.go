package cmd

import (
	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	identity   *postgres.GormIdentityProvider
	dispatcher services.DeliveryDispatcher
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		identity:   postgres.NewGormIdentityProvider(gormDB),
		dispatcher: services.NewDeliveryDispatcher(),
	}
}

func (c *CompositionRoot) UnitOfWorkFactory() ports.UnitOfWorkFactory {
	return c.uowFactory
}

func (c *CompositionRoot) IdentityProvider() ports.IdentityProvider {
	return c.identity
}

func (c *CompositionRoot) TokenIssuer() ports.TokenIssuer {
	return c.identity
}

func (c *CompositionRoot) CreateServerHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateUser:               c.CreateCreateUserCommandHandler(),
		CreateProduct:            c.CreateCreateProductCommandHandler(),
		UpdateProduct:            c.CreateUpdateProductCommandHandler(),
		CreateOrder:              c.CreateCreateOrderCommandHandler(),
		AcceptOrder:              c.CreateAcceptOrderCommandHandler(),
		CancelOrder:              c.CreateCancelOrderCommandHandler(),
		ProcessPayment:           c.CreateProcessPaymentCommandHandler(),
		MarkPaymentFailed:        c.CreateMarkPaymentFailedCommandHandler(),
		RefundPayment:            c.CreateRefundPaymentCommandHandler(),
		AssignDeliveryPartner:    c.CreateAssignDeliveryPartnerCommandHandler(),
		AutoAssignDelivery:       c.CreateAutoAssignDeliveryCommandHandler(),
		MarkDeliveryInTransit:    c.CreateMarkDeliveryInTransitCommandHandler(),
		CompleteDelivery:         c.CreateCompleteDeliveryCommandHandler(),
		CreateInventory:          c.CreateCreateInventoryCommandHandler(),
		UpdateInventory:          c.CreateUpdateInventoryCommandHandler(),
		MarkNotificationRead:     c.CreateMarkNotificationReadCommandHandler(),
		MarkAllNotificationsRead: c.CreateMarkAllNotificationsReadCommandHandler(),

		GetAvailablePartners:   c.CreateGetAvailablePartnersQueryHandler(),
		GetUnreadNotifications: c.CreateGetUnreadNotificationsQueryHandler(),
		DashboardStats:         c.CreateDashboardStatsQueryHandler(),
		MakerAnalytics:         c.CreateMakerAnalyticsQueryHandler(),
		CustomerAnalytics:      c.CreateCustomerAnalyticsQueryHandler(),
		DeliveryAnalytics:      c.CreateDeliveryAnalyticsQueryHandler(),
	}
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) inventoryUoWFactory() commands.InventoryUoWFactory {
	return FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	return commands.NewCreateUserCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateProcessPaymentCommandHandler() commands.ProcessPaymentCommandHandler {
	return commands.NewProcessPaymentCommandHandler(c.fullUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateMarkPaymentFailedCommandHandler() commands.MarkPaymentFailedCommandHandler {
	return commands.NewMarkPaymentFailedCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateRefundPaymentCommandHandler() commands.RefundPaymentCommandHandler {
	return commands.NewRefundPaymentCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateAssignDeliveryPartnerCommandHandler() commands.AssignDeliveryPartnerCommandHandler {
	return commands.NewAssignDeliveryPartnerCommandHandler(c.fullUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateAutoAssignDeliveryCommandHandler() commands.AutoAssignDeliveryCommandHandler {
	return commands.NewAutoAssignDeliveryCommandHandler(c.fullUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateMarkDeliveryInTransitCommandHandler() commands.MarkDeliveryInTransitCommandHandler {
	return commands.NewMarkDeliveryInTransitCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateCreateInventoryCommandHandler() commands.CreateInventoryCommandHandler {
	return commands.NewCreateInventoryCommandHandler(c.inventoryUoWFactory())
}

func (c *CompositionRoot) CreateUpdateInventoryCommandHandler() commands.UpdateInventoryCommandHandler {
	return commands.NewUpdateInventoryCommandHandler(c.inventoryUoWFactory())
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	return commands.NewMarkNotificationReadCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateMarkAllNotificationsReadCommandHandler() commands.MarkAllNotificationsReadCommandHandler {
	return commands.NewMarkAllNotificationsReadCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateGetAvailablePartnersQueryHandler() queries.GetAvailablePartnersQueryHandler {
	return queries.NewGetAvailablePartnersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnreadNotificationsQueryHandler() queries.GetUnreadNotificationsQueryHandler {
	return queries.NewGetUnreadNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateDashboardStatsQueryHandler() queries.DashboardStatsQueryHandler {
	return queries.NewDashboardStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateMakerAnalyticsQueryHandler() queries.MakerAnalyticsQueryHandler {
	return queries.NewMakerAnalyticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCustomerAnalyticsQueryHandler() queries.CustomerAnalyticsQueryHandler {
	return queries.NewCustomerAnalyticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateDeliveryAnalyticsQueryHandler() queries.DeliveryAnalyticsQueryHandler {
	return queries.NewDeliveryAnalyticsQueryHandler(c.gormDB)
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

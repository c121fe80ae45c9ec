// Package http exposes the marketplace over a role-gated JSON API.
// It coordinates between HTTP handlers and application use cases; every
// route except registration sits behind the bearer-token middleware.
package http

import (
	"net/http"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateUser               commands.CreateUserCommandHandler
	CreateProduct            commands.CreateProductCommandHandler
	UpdateProduct            commands.UpdateProductCommandHandler
	CreateOrder              commands.CreateOrderCommandHandler
	AcceptOrder              commands.AcceptOrderCommandHandler
	CancelOrder              commands.CancelOrderCommandHandler
	ProcessPayment           commands.ProcessPaymentCommandHandler
	MarkPaymentFailed        commands.MarkPaymentFailedCommandHandler
	RefundPayment            commands.RefundPaymentCommandHandler
	AssignDeliveryPartner    commands.AssignDeliveryPartnerCommandHandler
	AutoAssignDelivery       commands.AutoAssignDeliveryCommandHandler
	MarkDeliveryInTransit    commands.MarkDeliveryInTransitCommandHandler
	CompleteDelivery         commands.CompleteDeliveryCommandHandler
	CreateInventory          commands.CreateInventoryCommandHandler
	UpdateInventory          commands.UpdateInventoryCommandHandler
	MarkNotificationRead     commands.MarkNotificationReadCommandHandler
	MarkAllNotificationsRead commands.MarkAllNotificationsReadCommandHandler

	GetAvailablePartners   queries.GetAvailablePartnersQueryHandler
	GetUnreadNotifications queries.GetUnreadNotificationsQueryHandler
	DashboardStats         queries.DashboardStatsQueryHandler
	MakerAnalytics         queries.MakerAnalyticsQueryHandler
	CustomerAnalytics      queries.CustomerAnalyticsQueryHandler
	DeliveryAnalytics      queries.DeliveryAnalyticsQueryHandler
}

// Server implements the HTTP surface of the marketplace.
type Server struct {
	handlers   Handlers
	uowFactory ports.UnitOfWorkFactory
	identity   ports.IdentityProvider
	tokens     ports.TokenIssuer
}

// NewServer creates an HTTP server over the given handlers and collaborators.
// The unit of work factory backs the plain entity reads.
func NewServer(
	handlers Handlers,
	uowFactory ports.UnitOfWorkFactory,
	identity ports.IdentityProvider,
	tokens ports.TokenIssuer,
) *Server {
	return &Server{
		handlers:   handlers,
		uowFactory: uowFactory,
		identity:   identity,
		tokens:     tokens,
	}
}

// RegisterRoutes attaches all marketplace routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/users", s.CreateUser)

	api := e.Group("", bearerAuth(s.identity))

	api.GET("/users/me", s.GetCurrentUser)
	api.GET("/users/:id", s.GetUser)

	api.POST("/products", s.CreateProduct)
	api.GET("/products/:id", s.GetProduct)
	api.PATCH("/products/:id", s.UpdateProduct)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/accept", s.AcceptOrder)
	api.POST("/orders/:id/mark_paid", s.MarkOrderPaid)
	api.POST("/orders/:id/assign_delivery", s.AssignOrderDelivery)
	api.POST("/orders/:id/mark_delivered", s.MarkOrderDelivered)
	api.POST("/orders/:id/cancel", s.CancelOrder)

	api.GET("/payments/:id", s.GetPayment)
	api.POST("/payments/:id/process_payment", s.ProcessPayment)
	api.POST("/payments/:id/mark_failed", s.MarkPaymentFailed)
	api.POST("/payments/:id/refund", s.RefundPayment)

	api.GET("/deliveries/available_partners", s.GetAvailablePartners)
	api.POST("/deliveries/auto_assign", s.AutoAssignDelivery)
	api.GET("/deliveries/:id", s.GetDelivery)
	api.POST("/deliveries/:id/assign_partner", s.AssignDeliveryPartner)
	api.POST("/deliveries/:id/mark_in_transit", s.MarkDeliveryInTransit)
	api.POST("/deliveries/:id/mark_completed", s.CompleteDelivery)

	api.POST("/inventories", s.CreateInventory)
	api.GET("/inventories/:id", s.GetInventory)
	api.PATCH("/inventories/:id", s.UpdateInventory)

	api.GET("/notifications/unread", s.GetUnreadNotifications)
	api.POST("/notifications/mark_all_read", s.MarkAllNotificationsRead)
	api.POST("/notifications/:id/mark_read", s.MarkNotificationRead)

	api.GET("/analytics/dashboard_stats", s.GetDashboardStats)
	api.GET("/analytics/maker_analytics", s.GetMakerAnalytics)
	api.GET("/analytics/customer_analytics", s.GetCustomerAnalytics)
	api.GET("/analytics/delivery_analytics", s.GetDeliveryAnalytics)
}

// pathID parses the :id route parameter.
func pathID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// CreateUser handles POST /users - registers a user and issues its token.
func (s *Server) CreateUser(ctx echo.Context) error {
	var req struct {
		Name     string `json:"name"`
		Role     string `json:"role"`
		Location string `json:"location"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	role, err := user.RoleFromString(req.Role)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewCreateUserCommand(userID, req.Name, role, req.Location)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.CreateUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	token, err := s.tokens.IssueToken(ctx.Request().Context(), userID)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, echo.Map{
		"id":        userID.String(),
		"name":      req.Name,
		"role":      role.String(),
		"api_token": token,
	})
}

// GetCurrentUser handles GET /users/me.
func (s *Server) GetCurrentUser(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, userJSON(currentUser(ctx)))
}

// GetUser handles GET /users/{id}.
func (s *Server) GetUser(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	u, err := s.uowFactory.Create().UserRepository().Get(ctx.Request().Context(), id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, userJSON(u))
}

func userJSON(u *user.User) echo.Map {
	return echo.Map{
		"id":           u.ID().String(),
		"name":         u.Name(),
		"role":         u.Role().String(),
		"is_available": u.IsAvailable(),
		"location":     u.CurrentLocation(),
		"created_at":   u.CreatedAt().Format(time.RFC3339),
	}
}

// CreateProduct handles POST /products - lists a product for the current
// maker.
func (s *Server) CreateProduct(ctx echo.Context) error {
	if err := requireRole(ctx, "create_product", user.Maker); err != nil {
		return respondError(ctx, err)
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Price       string `json:"price"`
		Stock       int    `json:"stock"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	price, err := kernel.NewMoneyFromString(req.Price)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(
		productID, currentUser(ctx).ID(), req.Name, req.Description, price, req.Stock,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, echo.Map{"id": productID.String()})
}

// GetProduct handles GET /products/{id}.
func (s *Server) GetProduct(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	p, err := s.uowFactory.Create().ProductRepository().Get(ctx.Request().Context(), id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"id":          p.ID().String(),
		"maker_id":    p.MakerID().String(),
		"name":        p.Name(),
		"description": p.Description(),
		"price":       p.Price().String(),
		"stock":       p.Stock(),
		"available":   p.IsAvailable(),
		"created_at":  p.CreatedAt().Format(time.RFC3339),
	})
}

// UpdateProduct handles PATCH /products/{id} - edits price, stock or
// availability.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	if err := requireRole(ctx, "update_product", user.Maker); err != nil {
		return respondError(ctx, err)
	}

	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req struct {
		Price     *string `json:"price"`
		Stock     *int    `json:"stock"`
		Available *bool   `json:"available"`
	}
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var price *kernel.Money
	if req.Price != nil {
		parsed, priceErr := kernel.NewMoneyFromString(*req.Price)
		if priceErr != nil {
			return badRequest(ctx, priceErr.Error())
		}
		price = &parsed
	}

	cmd, err := commands.NewUpdateProductCommand(id, price, req.Stock, req.Available)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.UpdateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrder handles POST /orders - places an order for the current
// customer.
func (s *Server) CreateOrder(ctx echo.Context) error {
	if err := requireRole(ctx, "create_order", user.Customer); err != nil {
		return respondError(ctx, err)
	}

	var req struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, currentUser(ctx).ID(), productID, req.Quantity)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, echo.Map{"id": orderID.String()})
}

// GetOrder handles GET /orders/{id}.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	o, err := s.uowFactory.Create().OrderRepository().Get(ctx.Request().Context(), id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"id":          o.ID().String(),
		"customer_id": o.CustomerID().String(),
		"product_id":  o.ProductID().String(),
		"quantity":    o.Quantity(),
		"total_price": o.TotalPrice().String(),
		"status":      o.Status().String(),
		"created_at":  o.CreatedAt().Format(time.RFC3339),
	})
}

// AcceptOrder handles POST /orders/{id}/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	if err := requireRole(ctx, "accept_order", user.Maker); err != nil {
		return respondError(ctx, err)
	}

	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAcceptOrderCommand(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.AcceptOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"status": "accepted"})
}

// MarkOrderPaid handles POST /orders/{id}/mark_paid - settles the order's
// payment and tries to book a partner.
func (s *Server) MarkOrderPaid(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewProcessPaymentCommandForOrder(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.handlers.ProcessPayment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	if !result.Processed {
		return badRequest(ctx, "payment is not in a processable state")
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"processed":        result.Processed,
		"partner_assigned": result.PartnerAssigned,
	})
}

// AssignOrderDelivery handles POST /orders/{id}/assign_delivery - dispatches
// the first available partner for a paid order.
func (s *Server) AssignOrderDelivery(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAutoAssignDeliveryCommand(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	assigned, err := s.handlers.AutoAssignDelivery.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"assigned": assigned})
}

// MarkOrderDelivered handles POST /orders/{id}/mark_delivered.
func (s *Server) MarkOrderDelivered(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCompleteDeliveryCommandForOrder(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.CompleteDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"status": "delivered"})
}

// CancelOrder handles POST /orders/{id}/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"status": "cancelled"})
}

// GetPayment handles GET /payments/{id}.
func (s *Server) GetPayment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	pmt, err := s.uowFactory.Create().PaymentRepository().Get(ctx.Request().Context(), id)
	if err != nil {
		return respondError(ctx, err)
	}

	body := echo.Map{
		"id":             pmt.ID().String(),
		"order_id":       pmt.OrderID().String(),
		"status":         pmt.Status().String(),
		"amount":         pmt.Amount().String(),
		"transaction_id": pmt.TransactionID(),
		"created_at":     pmt.CreatedAt().Format(time.RFC3339),
	}
	if paidAt := pmt.PaidAt(); paidAt != nil {
		body["paid_at"] = paidAt.Format(time.RFC3339)
	}

	return ctx.JSON(http.StatusOK, body)
}

// ProcessPayment handles POST /payments/{id}/process_payment.
func (s *Server) ProcessPayment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewProcessPaymentCommand(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.handlers.ProcessPayment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	if !result.Processed {
		return badRequest(ctx, "payment is not in a processable state")
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"processed":        result.Processed,
		"partner_assigned": result.PartnerAssigned,
	})
}

// MarkPaymentFailed handles POST /payments/{id}/mark_failed.
func (s *Server) MarkPaymentFailed(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewMarkPaymentFailedCommand(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.MarkPaymentFailed.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"status": "failed"})
}

// RefundPayment handles POST /payments/{id}/refund - refunds a settled
// payment and voids its order.
func (s *Server) RefundPayment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRefundPaymentCommand(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.RefundPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"status": "refunded"})
}

// GetAvailablePartners handles GET /deliveries/available_partners.
func (s *Server) GetAvailablePartners(ctx echo.Context) error {
	query := queries.NewGetAvailablePartnersQuery()

	partners, err := s.handlers.GetAvailablePartners.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]echo.Map, len(partners))
	for i, partner := range partners {
		response[i] = echo.Map{
			"id":       partner.ID.String(),
			"name":     partner.Name,
			"location": partner.Location,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AutoAssignDelivery handles POST /deliveries/auto_assign.
func (s *Server) AutoAssignDelivery(ctx echo.Context) error {
	var req struct {
		OrderID string `json:"order_id"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAutoAssignDeliveryCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	assigned, err := s.handlers.AutoAssignDelivery.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"assigned": assigned})
}

// GetDelivery handles GET /deliveries/{id}.
func (s *Server) GetDelivery(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	dlv, err := s.uowFactory.Create().DeliveryRepository().Get(ctx.Request().Context(), id)
	if err != nil {
		return respondError(ctx, err)
	}

	body := echo.Map{
		"id":          dlv.ID().String(),
		"order_id":    dlv.OrderID().String(),
		"partner_id":  dlv.PartnerID().String(),
		"status":      dlv.Status().String(),
		"assigned_at": dlv.AssignedAt().Format(time.RFC3339),
	}
	if deliveredAt := dlv.DeliveredAt(); deliveredAt != nil {
		body["delivered_at"] = deliveredAt.Format(time.RFC3339)
	}

	return ctx.JSON(http.StatusOK, body)
}

// AssignDeliveryPartner handles POST /deliveries/{id}/assign_partner -
// points an existing delivery at a chosen partner.
func (s *Server) AssignDeliveryPartner(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req struct {
		PartnerID string `json:"partner_id"`
	}
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	partnerID, err := kernel.UUIDFromString(req.PartnerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAssignDeliveryPartnerCommandForDelivery(id, partnerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.AssignDeliveryPartner.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"status": "assigned"})
}

// MarkDeliveryInTransit handles POST /deliveries/{id}/mark_in_transit.
func (s *Server) MarkDeliveryInTransit(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewMarkDeliveryInTransitCommand(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.MarkDeliveryInTransit.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"status": "in_transit"})
}

// CompleteDelivery handles POST /deliveries/{id}/mark_completed.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCompleteDeliveryCommand(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.CompleteDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"status": "completed"})
}

// CreateInventory handles POST /inventories - opens a stock record for the
// current maker or supplier.
func (s *Server) CreateInventory(ctx echo.Context) error {
	if err := requireRole(ctx, "create_inventory", user.Maker, user.Supplier); err != nil {
		return respondError(ctx, err)
	}

	var req struct {
		ItemName          string `json:"item_name"`
		Quantity          int    `json:"quantity"`
		LowStockThreshold int    `json:"low_stock_threshold"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	inventoryID := kernel.NewUUID()
	cmd, err := commands.NewCreateInventoryCommand(
		inventoryID, currentUser(ctx).ID(), req.ItemName, req.Quantity, req.LowStockThreshold,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.CreateInventory.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, echo.Map{"id": inventoryID.String()})
}

// GetInventory handles GET /inventories/{id}.
func (s *Server) GetInventory(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	inv, err := s.uowFactory.Create().InventoryRepository().Get(ctx.Request().Context(), id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"id":                  inv.ID().String(),
		"owner_id":            inv.OwnerID().String(),
		"item_name":           inv.ItemName(),
		"quantity":            inv.Quantity(),
		"low_stock_threshold": inv.LowStockThreshold(),
		"is_low_stock":        inv.IsLowStock(),
		"updated_at":          inv.UpdatedAt().Format(time.RFC3339),
	})
}

// UpdateInventory handles PATCH /inventories/{id} - sets the quantity and
// fires a low stock alert when the new level crosses the threshold.
func (s *Server) UpdateInventory(ctx echo.Context) error {
	if err := requireRole(ctx, "update_inventory", user.Maker, user.Supplier); err != nil {
		return respondError(ctx, err)
	}

	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateInventoryCommand(id, req.Quantity)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.UpdateInventory.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUnreadNotifications handles GET /notifications/unread.
func (s *Server) GetUnreadNotifications(ctx echo.Context) error {
	query, err := queries.NewGetUnreadNotificationsQuery(currentUser(ctx).ID())
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.handlers.GetUnreadNotifications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	notifications := make([]echo.Map, len(result.Notifications))
	for i, n := range result.Notifications {
		notifications[i] = echo.Map{
			"id":         n.ID.String(),
			"message":    n.Message,
			"created_at": n.CreatedAt.Format(time.RFC3339),
		}
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"notifications": notifications,
		"count":         result.Count,
	})
}

// MarkNotificationRead handles POST /notifications/{id}/mark_read.
func (s *Server) MarkNotificationRead(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewMarkNotificationReadCommand(id, currentUser(ctx).ID())
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.MarkNotificationRead.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkAllNotificationsRead handles POST /notifications/mark_all_read and
// reports how many entries were flipped.
func (s *Server) MarkAllNotificationsRead(ctx echo.Context) error {
	cmd, err := commands.NewMarkAllNotificationsReadCommand(currentUser(ctx).ID())
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.handlers.MarkAllNotificationsRead.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"updated": updated})
}

// GetDashboardStats handles GET /analytics/dashboard_stats (admin only).
func (s *Server) GetDashboardStats(ctx echo.Context) error {
	query, err := queries.NewDashboardStatsQuery(currentUser(ctx).Role())
	if err != nil {
		return respondError(ctx, err)
	}

	stats, err := s.handlers.DashboardStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"total_users":         stats.TotalUsers,
		"total_orders":        stats.TotalOrders,
		"total_paid_revenue":  stats.TotalPaidRevenue.String(),
		"pending_order_count": stats.PendingOrderCount,
	})
}

// GetMakerAnalytics handles GET /analytics/maker_analytics (maker only).
func (s *Server) GetMakerAnalytics(ctx echo.Context) error {
	u := currentUser(ctx)
	query, err := queries.NewMakerAnalyticsQuery(u.ID(), u.Role())
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.handlers.MakerAnalytics.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	top := make([]echo.Map, len(result.TopProducts))
	for i, p := range result.TopProducts {
		top[i] = echo.Map{
			"product_id":  p.ProductID.String(),
			"name":        p.Name,
			"order_count": p.OrderCount,
			"revenue":     p.Revenue.String(),
		}
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"delivered_order_count": result.DeliveredOrderCount,
		"delivered_revenue":     result.DeliveredRevenue.String(),
		"top_products":          top,
	})
}

// GetCustomerAnalytics handles GET /analytics/customer_analytics (customer
// only).
func (s *Server) GetCustomerAnalytics(ctx echo.Context) error {
	u := currentUser(ctx)
	query, err := queries.NewCustomerAnalyticsQuery(u.ID(), u.Role())
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.handlers.CustomerAnalytics.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	recent := make([]echo.Map, len(result.RecentOrders))
	for i, o := range result.RecentOrders {
		recent[i] = echo.Map{
			"order_id":    o.OrderID.String(),
			"total_price": o.TotalPrice.String(),
			"status":      o.Status.String(),
			"created_at":  o.CreatedAt.Format(time.RFC3339),
		}
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"total_order_count": result.TotalOrderCount,
		"delivered_spend":   result.DeliveredSpend.String(),
		"recent_orders":     recent,
	})
}

// GetDeliveryAnalytics handles GET /analytics/delivery_analytics (delivery
// partner only).
func (s *Server) GetDeliveryAnalytics(ctx echo.Context) error {
	u := currentUser(ctx)
	query, err := queries.NewDeliveryAnalyticsQuery(u.ID(), u.Role())
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.handlers.DeliveryAnalytics.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"total_deliveries":     result.TotalDeliveries,
		"completed_deliveries": result.CompletedDeliveries,
		"assigned_last_7_days": result.AssignedLastWeek,
		"completion_rate":      result.CompletionRate,
	})
}

package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CustomerAnalyticsQueryHandler computes a customer's ordering rollup:
// total order count, delivered spend and the five most recent orders.
type CustomerAnalyticsQueryHandler struct {
	db *gorm.DB
}

// NewCustomerAnalyticsQueryHandler creates a handler for customer analytics.
func NewCustomerAnalyticsQueryHandler(db *gorm.DB) CustomerAnalyticsQueryHandler {
	return CustomerAnalyticsQueryHandler{db: db}
}

func (h CustomerAnalyticsQueryHandler) Handle(
	ctx context.Context,
	query CustomerAnalyticsQuery,
) (CustomerAnalyticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerAnalyticsQueryResponse{}, err
	}

	customerID := query.CustomerID().Bytes()

	var (
		response CustomerAnalyticsQueryResponse
		spend    decimal.Decimal
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COALESCE(SUM(total_price) FILTER (WHERE status = ?), 0)
		FROM orders
		WHERE customer_id = ?
	`, order.Delivered, customerID).Row()

	if err := row.Scan(&response.TotalOrderCount, &spend); err != nil {
		return CustomerAnalyticsQueryResponse{}, err
	}

	deliveredSpend, err := kernel.NewMoney(spend)
	if err != nil {
		return CustomerAnalyticsQueryResponse{}, err
	}
	response.DeliveredSpend = deliveredSpend

	response.RecentOrders = make([]RecentOrder, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, total_price, status, created_at
		FROM orders
		WHERE customer_id = ?
		ORDER BY created_at DESC
		LIMIT 5
	`, customerID).Rows()
	if err != nil {
		return CustomerAnalyticsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id        uuid.UUID
			total     decimal.Decimal
			status    order.Status
			createdAt time.Time
		)
		if err = rows.Scan(&id, &total, &status, &createdAt); err != nil {
			return CustomerAnalyticsQueryResponse{}, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return CustomerAnalyticsQueryResponse{}, idErr
		}

		totalPrice, moneyErr := kernel.NewMoney(total)
		if moneyErr != nil {
			return CustomerAnalyticsQueryResponse{}, moneyErr
		}

		response.RecentOrders = append(response.RecentOrders, RecentOrder{
			OrderID:    orderID,
			TotalPrice: totalPrice,
			Status:     status,
			CreatedAt:  createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return CustomerAnalyticsQueryResponse{}, err
	}

	return response, nil
}

package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MakerAnalyticsQueryHandler computes a maker's sales rollup: delivered
// volume and revenue plus the top five products by order count.
type MakerAnalyticsQueryHandler struct {
	db *gorm.DB
}

// NewMakerAnalyticsQueryHandler creates a handler for maker analytics.
func NewMakerAnalyticsQueryHandler(db *gorm.DB) MakerAnalyticsQueryHandler {
	return MakerAnalyticsQueryHandler{db: db}
}

// Handle executes the rollup. Revenue figures sum order totals of delivered
// orders only.
func (h MakerAnalyticsQueryHandler) Handle(
	ctx context.Context,
	query MakerAnalyticsQuery,
) (MakerAnalyticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return MakerAnalyticsQueryResponse{}, err
	}

	makerID := query.MakerID().Bytes()

	var (
		response MakerAnalyticsQueryResponse
		revenue  decimal.Decimal
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COALESCE(SUM(o.total_price), 0)
		FROM orders o
		JOIN products p ON p.id = o.product_id
		WHERE p.maker_id = ? AND o.status = ?
	`, makerID, order.Delivered).Row()

	if err := row.Scan(&response.DeliveredOrderCount, &revenue); err != nil {
		return MakerAnalyticsQueryResponse{}, err
	}

	deliveredRevenue, err := kernel.NewMoney(revenue)
	if err != nil {
		return MakerAnalyticsQueryResponse{}, err
	}
	response.DeliveredRevenue = deliveredRevenue

	response.TopProducts = make([]ProductSales, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.name,
			COUNT(o.id),
			COALESCE(SUM(o.total_price), 0)
		FROM products p
		JOIN orders o ON o.product_id = p.id
		WHERE p.maker_id = ?
		GROUP BY p.id, p.name
		ORDER BY COUNT(o.id) DESC, p.name
		LIMIT 5
	`, makerID).Rows()
	if err != nil {
		return MakerAnalyticsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id           uuid.UUID
			name         string
			orderCount   int64
			productTotal decimal.Decimal
		)
		if err = rows.Scan(&id, &name, &orderCount, &productTotal); err != nil {
			return MakerAnalyticsQueryResponse{}, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return MakerAnalyticsQueryResponse{}, idErr
		}

		productRevenue, moneyErr := kernel.NewMoney(productTotal)
		if moneyErr != nil {
			return MakerAnalyticsQueryResponse{}, moneyErr
		}

		response.TopProducts = append(response.TopProducts, ProductSales{
			ProductID:  productID,
			Name:       name,
			OrderCount: orderCount,
			Revenue:    productRevenue,
		})
	}

	if err = rows.Err(); err != nil {
		return MakerAnalyticsQueryResponse{}, err
	}

	return response, nil
}

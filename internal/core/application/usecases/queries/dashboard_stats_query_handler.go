package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/payment"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DashboardStatsQueryHandler computes the admin rollup on demand. Nothing is
// cached or materialized; the numbers reflect the database at read time.
type DashboardStatsQueryHandler struct {
	db *gorm.DB
}

// NewDashboardStatsQueryHandler creates a handler for the admin dashboard.
func NewDashboardStatsQueryHandler(db *gorm.DB) DashboardStatsQueryHandler {
	return DashboardStatsQueryHandler{db: db}
}

// Handle executes the rollup.
func (h DashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query DashboardStatsQuery,
) (DashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return DashboardStatsQueryResponse{}, err
	}

	var (
		response DashboardStatsQueryResponse
		revenue  decimal.Decimal
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM orders),
			(SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = ?),
			(SELECT COUNT(*) FROM orders WHERE status = ?)
	`, payment.Paid, order.Pending).Row()

	if err := row.Scan(
		&response.TotalUsers,
		&response.TotalOrders,
		&revenue,
		&response.PendingOrderCount,
	); err != nil {
		return DashboardStatsQueryResponse{}, err
	}

	totalRevenue, err := kernel.NewMoney(revenue)
	if err != nil {
		return DashboardStatsQueryResponse{}, err
	}
	response.TotalPaidRevenue = totalRevenue

	return response, nil
}

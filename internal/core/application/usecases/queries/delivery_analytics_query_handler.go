package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/delivery"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DeliveryAnalyticsQueryHandler computes a partner's workload rollup:
// delivery counts, trailing week assignments and completion rate.
type DeliveryAnalyticsQueryHandler struct {
	db *gorm.DB
}

// NewDeliveryAnalyticsQueryHandler creates a handler for delivery analytics.
func NewDeliveryAnalyticsQueryHandler(db *gorm.DB) DeliveryAnalyticsQueryHandler {
	return DeliveryAnalyticsQueryHandler{db: db}
}

func (h DeliveryAnalyticsQueryHandler) Handle(
	ctx context.Context,
	query DeliveryAnalyticsQuery,
) (DeliveryAnalyticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryAnalyticsQueryResponse{}, err
	}

	partnerID := query.PartnerID().Bytes()
	weekAgo := time.Now().UTC().AddDate(0, 0, -7)

	var response DeliveryAnalyticsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE assigned_at >= ?)
		FROM deliveries
		WHERE partner_id = ?
	`, delivery.Completed, weekAgo, partnerID).Row()

	if err := row.Scan(
		&response.TotalDeliveries,
		&response.CompletedDeliveries,
		&response.AssignedLastWeek,
	); err != nil {
		return DeliveryAnalyticsQueryResponse{}, err
	}

	response.CompletionRate = completionRate(response.CompletedDeliveries, response.TotalDeliveries)

	return response, nil
}

// completionRate returns completed over total as a percentage with two
// decimal places. A partner without deliveries has a rate of zero, not a
// division error.
func completionRate(completed, total int64) string {
	if total == 0 {
		return decimal.Zero.StringFixed(2)
	}

	return decimal.NewFromInt(completed).
		Div(decimal.NewFromInt(total)).
		Mul(decimal.NewFromInt(100)).
		Round(2).
		StringFixed(2)
}

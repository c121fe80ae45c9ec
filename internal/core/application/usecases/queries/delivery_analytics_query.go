package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrDeliveryAnalyticsQueryIsNotConstructed = errors.New(
	"DeliveryAnalyticsQuery must be created via NewDeliveryAnalyticsQuery constructor",
)

// DeliveryAnalyticsQuery retrieves a delivery partner's own workload rollup.
type DeliveryAnalyticsQuery struct {
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeliveryAnalyticsQuery creates the delivery analytics query, rejecting
// requesters without the delivery partner role.
func NewDeliveryAnalyticsQuery(requesterID kernel.UUID, requesterRole user.Role) (DeliveryAnalyticsQuery, error) {
	if requesterRole != user.DeliveryPartner {
		return DeliveryAnalyticsQuery{}, errs.NewAuthorizationError(
			requesterRole.String(), "delivery_analytics",
		)
	}

	if err := requesterID.Validate(); err != nil {
		return DeliveryAnalyticsQuery{}, err
	}

	return DeliveryAnalyticsQuery{
		partnerID: requesterID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q DeliveryAnalyticsQuery) Validate() error {
	return q.guard.Validate(ErrDeliveryAnalyticsQueryIsNotConstructed)
}

// PartnerID returns the identifier of the requesting partner.
func (q DeliveryAnalyticsQuery) PartnerID() kernel.UUID {
	return q.partnerID
}

// DeliveryAnalyticsQueryResponse is the partner rollup. CompletionRate is
// completed over total deliveries as a percentage with two decimal places,
// "0.00" when the partner has no deliveries yet.
type DeliveryAnalyticsQueryResponse struct {
	TotalDeliveries     int64
	CompletedDeliveries int64
	AssignedLastWeek    int64
	CompletionRate      string
}

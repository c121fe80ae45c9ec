package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrMakerAnalyticsQueryIsNotConstructed = errors.New(
	"MakerAnalyticsQuery must be created via NewMakerAnalyticsQuery constructor",
)

// MakerAnalyticsQuery retrieves sales rollups scoped to the requesting
// maker's own products.
type MakerAnalyticsQuery struct {
	makerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMakerAnalyticsQuery creates the maker analytics query, rejecting
// requesters without the maker role.
func NewMakerAnalyticsQuery(requesterID kernel.UUID, requesterRole user.Role) (MakerAnalyticsQuery, error) {
	if requesterRole != user.Maker {
		return MakerAnalyticsQuery{}, errs.NewAuthorizationError(
			requesterRole.String(), "maker_analytics",
		)
	}

	if err := requesterID.Validate(); err != nil {
		return MakerAnalyticsQuery{}, err
	}

	return MakerAnalyticsQuery{
		makerID: requesterID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q MakerAnalyticsQuery) Validate() error {
	return q.guard.Validate(ErrMakerAnalyticsQueryIsNotConstructed)
}

// MakerID returns the identifier of the requesting maker.
func (q MakerAnalyticsQuery) MakerID() kernel.UUID {
	return q.makerID
}

// ProductSales is one entry of the maker's top product ranking.
type ProductSales struct {
	ProductID  kernel.UUID
	Name       string
	OrderCount int64
	Revenue    kernel.Money
}

// MakerAnalyticsQueryResponse is the maker's sales rollup. TopProducts holds
// at most five products ranked by order count.
type MakerAnalyticsQueryResponse struct {
	DeliveredOrderCount int64
	DeliveredRevenue    kernel.Money
	TopProducts         []ProductSales
}

package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrDashboardStatsQueryIsNotConstructed = errors.New(
	"DashboardStatsQuery must be created via NewDashboardStatsQuery constructor",
)

// DashboardStatsQuery retrieves the platform-wide rollup. Admin only; the
// role gate lives in the constructor so a mismatch never reaches the
// database.
type DashboardStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewDashboardStatsQuery creates the admin dashboard query, rejecting
// requesters without the admin role.
func NewDashboardStatsQuery(requesterRole user.Role) (DashboardStatsQuery, error) {
	if requesterRole != user.Admin {
		return DashboardStatsQuery{}, errs.NewAuthorizationError(
			requesterRole.String(), "dashboard_stats",
		)
	}

	return DashboardStatsQuery{guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q DashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrDashboardStatsQueryIsNotConstructed)
}

// DashboardStatsQueryResponse is the platform-wide rollup.
// TotalPaidRevenue sums settled payment amounts only; pending, failed and
// refunded payments contribute nothing.
type DashboardStatsQueryResponse struct {
	TotalUsers        int64
	TotalOrders       int64
	TotalPaidRevenue  kernel.Money
	PendingOrderCount int64
}

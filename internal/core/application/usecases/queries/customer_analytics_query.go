package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCustomerAnalyticsQueryIsNotConstructed = errors.New(
	"CustomerAnalyticsQuery must be created via NewCustomerAnalyticsQuery constructor",
)

// CustomerAnalyticsQuery retrieves a customer's own ordering history rollup.
type CustomerAnalyticsQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCustomerAnalyticsQuery creates the customer analytics query, rejecting
// requesters without the customer role.
func NewCustomerAnalyticsQuery(requesterID kernel.UUID, requesterRole user.Role) (CustomerAnalyticsQuery, error) {
	if requesterRole != user.Customer {
		return CustomerAnalyticsQuery{}, errs.NewAuthorizationError(
			requesterRole.String(), "customer_analytics",
		)
	}

	if err := requesterID.Validate(); err != nil {
		return CustomerAnalyticsQuery{}, err
	}

	return CustomerAnalyticsQuery{
		customerID: requesterID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CustomerAnalyticsQuery) Validate() error {
	return q.guard.Validate(ErrCustomerAnalyticsQueryIsNotConstructed)
}

// CustomerID returns the identifier of the requesting customer.
func (q CustomerAnalyticsQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// RecentOrder is one entry of the customer's recent order listing.
type RecentOrder struct {
	OrderID    kernel.UUID
	TotalPrice kernel.Money
	Status     order.Status
	CreatedAt  time.Time
}

// CustomerAnalyticsQueryResponse is the customer rollup. DeliveredSpend sums
// the totals of delivered orders only; RecentOrders holds at most the five
// newest orders in any status.
type CustomerAnalyticsQueryResponse struct {
	TotalOrderCount int64
	DeliveredSpend  kernel.Money
	RecentOrders    []RecentOrder
}

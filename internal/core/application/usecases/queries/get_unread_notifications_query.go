package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetUnreadNotificationsQueryIsNotConstructed = errors.New(
	"GetUnreadNotificationsQuery must be created via NewGetUnreadNotificationsQuery constructor",
)

// GetUnreadNotificationsQuery retrieves the requester's unread inbox, newest
// first. Notifications are always scoped to the requester; there is no way
// to read someone else's.
type GetUnreadNotificationsQuery struct {
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUnreadNotificationsQuery creates a query for the requester's unread
// notifications.
func NewGetUnreadNotificationsQuery(requesterID kernel.UUID) (GetUnreadNotificationsQuery, error) {
	if err := requesterID.Validate(); err != nil {
		return GetUnreadNotificationsQuery{}, err
	}

	return GetUnreadNotificationsQuery{
		requesterID: requesterID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUnreadNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetUnreadNotificationsQueryIsNotConstructed)
}

// RequesterID returns the identifier of the inbox owner.
func (q GetUnreadNotificationsQuery) RequesterID() kernel.UUID {
	return q.requesterID
}

// UnreadNotification describes one unread inbox entry.
type UnreadNotification struct {
	ID        kernel.UUID
	Message   string
	CreatedAt time.Time
}

// GetUnreadNotificationsQueryResponse carries the unread entries and their
// count.
type GetUnreadNotificationsQueryResponse struct {
	Notifications []UnreadNotification
	Count         int
}

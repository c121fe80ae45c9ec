package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnreadNotificationsQueryHandler reads the requester's unread inbox.
type GetUnreadNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetUnreadNotificationsQueryHandler creates a handler for unread inbox
// reads.
func NewGetUnreadNotificationsQueryHandler(db *gorm.DB) GetUnreadNotificationsQueryHandler {
	return GetUnreadNotificationsQueryHandler{db: db}
}

// Handle executes the query, newest notifications first.
func (h GetUnreadNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetUnreadNotificationsQuery,
) (GetUnreadNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUnreadNotificationsQueryResponse{}, err
	}

	response := GetUnreadNotificationsQueryResponse{
		Notifications: make([]UnreadNotification, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			message,
			created_at
		FROM notifications
		WHERE user_id = ? AND NOT is_read
		ORDER BY created_at DESC
	`, query.RequesterID().Bytes()).Rows()
	if err != nil {
		return GetUnreadNotificationsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id        uuid.UUID
			message   string
			createdAt time.Time
		)
		if err = rows.Scan(&id, &message, &createdAt); err != nil {
			return GetUnreadNotificationsQueryResponse{}, err
		}

		notificationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetUnreadNotificationsQueryResponse{}, idErr
		}

		response.Notifications = append(response.Notifications, UnreadNotification{
			ID:        notificationID,
			Message:   message,
			CreatedAt: createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return GetUnreadNotificationsQueryResponse{}, err
	}

	response.Count = len(response.Notifications)
	return response, nil
}

package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for the
// notification feed. Writes happen inside the unit of work of the transition
// that produced them; a failed write fails the whole transition.
type NotificationRepository interface {
	// Add persists a new notification to storage.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// Update persists changes to an existing notification (read flag only;
	// the feed is otherwise append-only).
	Update(ctx context.Context, aggregate *notification.Notification) error

	// Get retrieves a notification by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// MarkAllRead flips every unread notification of the given user to read
	// in one statement and returns how many rows changed.
	MarkAllRead(ctx context.Context, userID kernel.UUID) (int64, error)
}

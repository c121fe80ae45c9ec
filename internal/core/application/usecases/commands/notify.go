package commands

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/ports"
)

// addNotification writes an unread notification for the recipient inside the
// caller's unit of work, so the message commits or rolls back together with
// the state change it announces.
func addNotification(
	ctx context.Context,
	repo ports.NotificationRepository,
	recipientID kernel.UUID,
	message string,
) error {
	n, err := notification.NewNotification(kernel.NewUUID(), recipientID, message)
	if err != nil {
		return err
	}

	return repo.Add(ctx, n)
}

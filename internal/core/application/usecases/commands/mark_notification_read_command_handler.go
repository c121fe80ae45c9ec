package commands

import (
	"context"
	"fmt"

	"marketplace/internal/pkg/errs"
)

// ErrNotificationNotOwned is returned when a user tries to acknowledge a
// notification addressed to someone else.
var ErrNotificationNotOwned = fmt.Errorf(
	"%w: notification belongs to another user", errs.ErrUnauthorized,
)

// MarkNotificationReadCommandHandler acknowledges a single notification.
// Marking an already read notification again is a harmless no-op.
type MarkNotificationReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkNotificationReadCommandHandler creates a handler for notification
// acknowledgement.
func NewMarkNotificationReadCommandHandler(
	uowFactory NotificationUoWFactory,
) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acknowledgement command.
func (h *MarkNotificationReadCommandHandler) Handle(
	ctx context.Context,
	cmd MarkNotificationReadCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	notificationRepo := uow.NotificationRepository()
	n, err := notificationRepo.Get(ctx, cmd.NotificationID())
	if err != nil {
		return err
	}

	if !n.UserID().IsEqual(cmd.RequesterID()) {
		return ErrNotificationNotOwned
	}

	n.MarkRead()

	if err = notificationRepo.Update(ctx, n); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

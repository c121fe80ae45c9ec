package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrMarkAllNotificationsReadCommandIsNotConstructed = errors.New(
	"MarkAllNotificationsReadCommand must be created via NewMarkAllNotificationsReadCommand constructor",
)

// MarkAllNotificationsReadCommand represents a user clearing their whole
// unread inbox at once.
type MarkAllNotificationsReadCommand struct { //nolint:recvcheck //using for validation
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkAllNotificationsReadCommand creates a command to clear the
// requester's unread notifications.
func NewMarkAllNotificationsReadCommand(requesterID kernel.UUID) (MarkAllNotificationsReadCommand, error) {
	cmd := MarkAllNotificationsReadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRequesterID(requesterID); err != nil {
		return MarkAllNotificationsReadCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkAllNotificationsReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkAllNotificationsReadCommandIsNotConstructed)
}

// RequesterID returns the identifier of the acting user.
func (c MarkAllNotificationsReadCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

func (c *MarkAllNotificationsReadCommand) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}

	c.requesterID = requesterID
	return nil
}

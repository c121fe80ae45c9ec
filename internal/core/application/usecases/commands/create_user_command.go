package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateUserCommandIsNotConstructed = errors.New(
		"CreateUserCommand must be created via NewCreateUserCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
)

// CreateUserCommand represents a request to register a new marketplace user.
// The role decides how the account participates: customers place orders,
// makers sell products, delivery partners get dispatched, suppliers keep
// inventory, admins read the dashboard.
//
// Example:
//
//	userID := kernel.NewUUID()
//	cmd, err := NewCreateUserCommand(userID, "Abeba", user.Maker, "Addis Ababa")
//	if err != nil {
//	    return fmt.Errorf("invalid user data: %w", err)
//	}
//
//	handler := NewCreateUserCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create user: %w", err)
//	}
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	name     string
	role     user.Role
	location string

	guard guard.ConstructorGuard
}

// NewCreateUserCommand creates a command to register a new user.
// Validates that the user ID is valid, the name is not empty and the role is
// one of the known marketplace roles.
func NewCreateUserCommand(
	userID kernel.UUID,
	name string,
	role user.Role,
	location string,
) (CreateUserCommand, error) {
	cmd := CreateUserCommand{
		location: location,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setName(name),
		cmd.setRole(role),
	); err != nil {
		return CreateUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

// UserID returns the identifier for the new user.
func (c CreateUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Name returns the user's display name.
func (c CreateUserCommand) Name() string {
	return c.name
}

// Role returns the marketplace role for the new user.
func (c CreateUserCommand) Role() user.Role {
	return c.role
}

// Location returns the user's free-form location, possibly empty.
func (c CreateUserCommand) Location() string {
	return c.location
}

func (c *CreateUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateUserCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

// Package userrepo provides data transfer objects and mapping functions for
// user persistence. Besides plain aggregate storage it owns the partner
// availability flag that the dispatch flow locks with a conditional update.
package userrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
// ApiToken is managed by the identity adapter, not by the domain aggregate,
// so the mapping functions leave it alone.
type UserDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string
	Role            string `gorm:"index"`
	IsAvailable     bool   `gorm:"index"`
	CurrentLocation string
	ApiToken        *string `gorm:"uniqueIndex"`
	CreatedAt       time.Time
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            aggregate.Name(),
		Role:            aggregate.Role().String(),
		IsAvailable:     aggregate.IsAvailable(),
		CurrentLocation: aggregate.CurrentLocation(),
		CreatedAt:       aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a user domain aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Name, role, dto.IsAvailable, dto.CurrentLocation, dto.CreatedAt)
}

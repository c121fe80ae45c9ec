package postgres

import (
	"context"
	"errors"

	"marketplace/internal/adapters/out/postgres/userrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormIdentityProvider resolves bearer tokens against the api_token column of
// the users table and mints tokens for new registrations. Tokens live next to
// the user row but are invisible to the user aggregate.
type GormIdentityProvider struct {
	db *gorm.DB
}

// NewGormIdentityProvider creates a token-based identity provider.
func NewGormIdentityProvider(db *gorm.DB) *GormIdentityProvider {
	return &GormIdentityProvider{db: db}
}

// UserByToken resolves a bearer token to its user.
func (p *GormIdentityProvider) UserByToken(ctx context.Context, token string) (*user.User, error) {
	if token == "" {
		return nil, errs.NewValueIsRequiredError("token")
	}

	var dto userrepo.UserDTO
	if err := p.db.WithContext(ctx).First(&dto, "api_token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user for token", token)
		}
		return nil, err
	}

	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Name, role, dto.IsAvailable, dto.CurrentLocation, dto.CreatedAt)
}

// IssueToken mints a fresh token for the given user. The previous token, if
// any, stops working.
func (p *GormIdentityProvider) IssueToken(ctx context.Context, userID kernel.UUID) (string, error) {
	if err := userID.Validate(); err != nil {
		return "", err
	}

	token := uuid.NewString()

	result := p.db.WithContext(ctx).
		Model(&userrepo.UserDTO{}).
		Where("id = ?", userID.Bytes()).
		Update("api_token", token)
	if result.Error != nil {
		return "", result.Error
	}

	if result.RowsAffected == 0 {
		return "", errs.NewObjectNotFoundError("user", userID.String())
	}

	return token, nil
}

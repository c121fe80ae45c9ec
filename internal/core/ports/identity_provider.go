package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
)

// IdentityProvider resolves bearer credentials into marketplace users. The
// auth collaborator sits behind this port; the HTTP adapter only ever sees
// the resolved user and its role claim.
type IdentityProvider interface {
	// UserByToken resolves a bearer token to its user.
	// Returns an object-not-found error for unknown tokens.
	UserByToken(ctx context.Context, token string) (*user.User, error)
}

// TokenIssuer provisions bearer credentials for newly registered users.
// Issuance is an auth concern, so tokens never touch the user aggregate.
type TokenIssuer interface {
	// IssueToken mints a fresh token for the given user and returns it.
	// Reissuing invalidates any previous token.
	IssueToken(ctx context.Context, userID kernel.UUID) (string, error)
}

package http

import (
	"net/http"
	"strings"

	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// currentUserKey is the echo context key under which the authenticated user
// is stored by the bearer middleware.
const currentUserKey = "current_user"

// bearerAuth resolves the Authorization header against the identity provider
// and stores the matched user in the request context. Requests without a
// valid token never reach the route handlers.
func bearerAuth(identity ports.IdentityProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return ctx.JSON(http.StatusForbidden, errorBody{Error: "missing bearer token"})
			}

			u, err := identity.UserByToken(ctx.Request().Context(), token)
			if err != nil {
				return ctx.JSON(http.StatusForbidden, errorBody{Error: "invalid bearer token"})
			}

			ctx.Set(currentUserKey, u)
			return next(ctx)
		}
	}
}

// currentUser returns the authenticated user stored by bearerAuth.
func currentUser(ctx echo.Context) *user.User {
	u, _ := ctx.Get(currentUserKey).(*user.User)
	return u
}

// requireRole rejects the request unless the authenticated user holds one of
// the given roles.
func requireRole(ctx echo.Context, operation string, roles ...user.Role) error {
	u := currentUser(ctx)
	for _, role := range roles {
		if u.Role() == role {
			return nil
		}
	}
	return errs.NewAuthorizationError(u.Role().String(), operation)
}

package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"truefind/internal/domain/entity"
	domainerrors "truefind/internal/domain/errors"
	"truefind/internal/usecase"
)

// keyPrincipal is the echo.Context key the authenticated profile is stored
// under.
const keyPrincipal = "principal"

// AuthMiddleware guards routes that require a verified identity. Every
// protected request re-verifies its bearer token with the identity provider
// and resolves the local profile before any handler logic runs.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate validates the bearer ID token and stores the resolved profile
// on the context. Requests without a valid token are rejected with 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("Authorization header is missing")
		}

		idToken := strings.TrimPrefix(authHeader, "Bearer ")
		if idToken == authHeader {
			return domainerrors.ErrUnauthorized.WithDetails("Invalid token format, must be Bearer token")
		}

		principal, err := m.authUC.ResolvePrincipal(c.Request().Context(), idToken)
		if err != nil {
			return err
		}

		c.Set(keyPrincipal, principal)

		return next(c)
	}
}

// Principal returns the authenticated profile stored by Authenticate, or nil
// when the route is not guarded.
func Principal(c echo.Context) *entity.UserProfile {
	principal, _ := c.Get(keyPrincipal).(*entity.UserProfile)

	return principal
}

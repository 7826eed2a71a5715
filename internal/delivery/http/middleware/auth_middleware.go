// Package middleware contains the HTTP cross-cutting concerns: bearer
// authentication, request-scoped logging, and central error rendering.
package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"cinelog/internal/domain/entity"
	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/usecase"
)

// identityKey is the echo context key the authenticated identity lives under.
const identityKey = "identity"

// AuthMiddleware guards routes behind bearer token authentication.
type AuthMiddleware struct {
	uc usecase.UserUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(uc usecase.UserUsecase) *AuthMiddleware {
	return &AuthMiddleware{uc: uc}
}

// Authenticate resolves the Authorization header into a caller identity.
// Every failure mode, missing header, malformed scheme, bad token, or a
// subject that no longer exists, yields the same unauthenticated error.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get("Authorization"))
		if !ok {
			return errors.WithStack(domainerrors.ErrUnauthenticated)
		}

		identity, err := m.uc.Resolve(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}

		SetIdentity(c, identity)

		return next(c)
	}
}

// SetIdentity places the caller identity on the request context.
func SetIdentity(c echo.Context, identity entity.Identity) {
	c.Set(identityKey, identity)
}

// bearerToken extracts the credentials from an Authorization header value.
// The scheme comparison is case-insensitive per RFC 7235.
func bearerToken(header string) (string, bool) {
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(prefix):])

	return token, token != ""
}

// CurrentIdentity returns the identity placed on the context by Authenticate.
func CurrentIdentity(c echo.Context) (entity.Identity, bool) {
	identity, ok := c.Get(identityKey).(entity.Identity)

	return identity, ok
}

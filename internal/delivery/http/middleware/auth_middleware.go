package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	delivctx "institute/internal/delivery/context"
	"institute/internal/domain/entity"
	domainerrors "institute/internal/domain/errors"
	"institute/internal/domain/repository"
	"institute/internal/domain/service"
	"institute/internal/errors"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokens service.TokenService
	users  repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokens service.TokenService, users repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

// Authenticate validates the Bearer access token and attaches the verified
// identity to the request context. The 401 message distinguishes missing,
// expired and malformed tokens.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return domainerrors.ErrUnauthorized.WithMessage("Authentication token required")
		}

		claims, err := m.tokens.Verify(token)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenExpired):
				return domainerrors.ErrUnauthorized.WithMessage("Token expired")
			case errors.Is(err, service.ErrTokenMalformed):
				return domainerrors.ErrUnauthorized.WithMessage("Invalid token")
			default:
				return domainerrors.ErrUnauthorized.WithMessage("Authentication failed")
			}
		}

		delivctx.SetIdentity(c, claims)

		return next(c)
	}
}

// OptionalAuthenticate attaches the identity when a valid token is present
// and lets the request through anonymously otherwise. Verification failures
// are swallowed, never surfaced.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return next(c)
		}

		if claims, err := m.tokens.Verify(token); err == nil {
			delivctx.SetIdentity(c, claims)
		}

		return next(c)
	}
}

// RequireAuth passes any authenticated identity regardless of role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return m.AllowRoles(entity.RoleStudent, entity.RoleAdmin)(next)
}

// RequireAdmin passes only administrator identities.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return m.AllowRoles(entity.RoleAdmin)(next)
}

// RequireStudent passes only student identities.
func (m *AuthMiddleware) RequireStudent(next echo.HandlerFunc) echo.HandlerFunc {
	return m.AllowRoles(entity.RoleStudent)(next)
}

// AllowRoles is a middleware factory gating a route to the given roles:
// 401 without an identity, 403 with an identity outside the allowed set.
func (m *AuthMiddleware) AllowRoles(allowed ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := delivctx.UserRole(c)
			if !ok {
				return domainerrors.ErrUnauthorized.WithMessage("Authentication required")
			}

			if !entity.Roles(allowed).Contains(role) {
				return errors.WithStack(domainerrors.ErrForbidden)
			}

			return next(c)
		}
	}
}

// RequireAdminOrAllowFirst gates admin registration: an admin identity always
// passes, and anyone passes while the store holds zero admins so the first
// administrator can bootstrap itself. Afterwards an anonymous request gets
// 401 and a non-admin identity gets 403.
func (m *AuthMiddleware) RequireAdminOrAllowFirst(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, ok := delivctx.UserRole(c)
		if ok && role == entity.RoleAdmin {
			return next(c)
		}

		count, err := m.users.CountByRole(c.Request().Context(), entity.RoleAdmin)
		if err != nil {
			return errors.Wrap(err, "failed to count admins")
		}
		if count == 0 {
			return next(c)
		}

		if !ok {
			return domainerrors.ErrUnauthorized.WithMessage("Admin authentication required")
		}

		return errors.WithStack(domainerrors.ErrForbidden)
	}
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", false
	}

	token := strings.TrimPrefix(header, "Bearer ")
	if token == header || token == "" {
		return "", false
	}

	return token, true
}

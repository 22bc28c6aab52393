// Package context carries request-scoped values between middleware and
// handlers without leaking echo internals into the rest of the application.
package context

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"institute/internal/domain/entity"
	"institute/internal/domain/service"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyUserID is the key for the authenticated user's ID.
	KeyUserID ContextKey = "userID"

	// KeyUserEmail is the key for the authenticated user's email.
	KeyUserEmail ContextKey = "userEmail"

	// KeyUserRole is the key for the authenticated user's role.
	KeyUserRole ContextKey = "userRole"
)

// SetIdentity stores the verified token claims on the request context for
// downstream handlers and role gates.
func SetIdentity(c echo.Context, claims *service.Claims) {
	c.Set(string(KeyUserID), claims.UserID)
	c.Set(string(KeyUserEmail), claims.Email)
	c.Set(string(KeyUserRole), claims.Role)
}

// UserID extracts the authenticated user's ID from echo.Context.
// The second return is false when the request carried no verified identity.
func UserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(string(KeyUserID)).(uuid.UUID)

	return id, ok && id != uuid.Nil
}

// UserEmail extracts the authenticated user's email from echo.Context.
func UserEmail(c echo.Context) (string, bool) {
	email, ok := c.Get(string(KeyUserEmail)).(string)

	return email, ok && email != ""
}

// UserRole extracts the authenticated user's role from echo.Context.
func UserRole(c echo.Context) (entity.Role, bool) {
	role, ok := c.Get(string(KeyUserRole)).(entity.Role)

	return role, ok && role.IsValid()
}

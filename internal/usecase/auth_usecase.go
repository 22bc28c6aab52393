// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"institute/internal/domain/entity"
	"institute/internal/domain/service"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput defines the fields a user may change on their own account.
// Role and password are deliberately absent; they can never be changed through
// the profile path.
type UpdateProfileInput struct {
	Name             *string
	Email            *string
	Phone            *string
	EnrolledPrograms []string
}

// --- Output DTOs ---

// AuthOutput returns the sanitized account plus a fresh token pair.
type AuthOutput struct {
	User   *entity.User
	Tokens *service.TokenPair
}

// AuthUsecase defines the interface for authentication and account operations.
// This is the contract that the delivery layer (API handlers) depends on.
type AuthUsecase interface {
	// Login authenticates credentials against a single role pool. Unknown
	// email, wrong password, and wrong pool all fail identically with
	// ErrInvalidCredentials.
	Login(ctx context.Context, pool entity.Role, input LoginInput) (*AuthOutput, error)

	// Register creates an account in the given pool. The student pool rejects
	// reserved admin email domains.
	Register(ctx context.Context, pool entity.Role, input RegisterInput) (*AuthOutput, error)

	// RegisterAdmin creates an admin account. When no admins exist yet the
	// call is open (bootstrap); afterwards callerID must belong to an
	// existing admin.
	RegisterAdmin(ctx context.Context, input RegisterInput, callerID *uuid.UUID) (*AuthOutput, error)

	// CurrentUser loads the authenticated user's account.
	CurrentUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// UpdateProfile applies the allowed profile changes and returns the
	// updated account.
	UpdateProfile(ctx context.Context, id uuid.UUID, input UpdateProfileInput) (*entity.User, error)

	// RefreshAccessToken mints a fresh token pair for an already
	// authenticated user.
	RefreshAccessToken(ctx context.Context, id uuid.UUID) (*service.TokenPair, error)
}

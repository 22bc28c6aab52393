// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"institute/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ListOptions carries offset pagination for list queries.
type ListOptions struct {
	Offset int
	Limit  int
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID. The password digest
	// is not loaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their case-folded email address.
	// withDigest controls whether the password digest is loaded; only the
	// credential-check path asks for it.
	FindByEmail(ctx context.Context, email string, withDigest bool) (*entity.User, error)

	// CountByRole reports how many users hold the given role.
	CountByRole(ctx context.Context, role entity.Role) (int64, error)

	// List retrieves a page of users, newest first, plus the total count.
	List(ctx context.Context, opts ListOptions) ([]*entity.User, int64, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

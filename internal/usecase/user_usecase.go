package usecase

import (
	"context"

	"github.com/google/uuid"

	"institute/internal/domain/entity"
	"institute/internal/pagination"
)

// AdminUpdateUserInput defines the fields an admin may change on any account.
// Role and password still cannot be set through this path.
type AdminUpdateUserInput struct {
	Name             *string
	Email            *string
	Phone            *string
	EnrolledPrograms []string
}

// UserUsecase defines the admin-only user management operations.
type UserUsecase interface {
	// List retrieves a page of users plus the pagination envelope.
	List(ctx context.Context, opts pagination.Options) ([]*entity.User, *pagination.Pagination, error)

	// Get loads a single user by ID.
	Get(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Update applies admin edits and returns the updated account.
	Update(ctx context.Context, id uuid.UUID, input AdminUpdateUserInput) (*entity.User, error)

	// Delete removes an account.
	Delete(ctx context.Context, id uuid.UUID) error
}

package usecase

import (
	"context"

	"github.com/google/uuid"

	"institute/internal/domain/entity"
	"institute/internal/pagination"
)

// SubmitContactInput defines a public contact form submission.
type SubmitContactInput struct {
	Name    string
	Email   string
	Mobile  string
	Subject string
	Message string
}

// ContactUsecase defines contact message operations.
type ContactUsecase interface {
	// Submit records a new message with status New.
	Submit(ctx context.Context, input SubmitContactInput) (*entity.Contact, error)

	List(ctx context.Context, opts pagination.Options) ([]*entity.Contact, *pagination.Pagination, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Contact, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ContactStatus) (*entity.Contact, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

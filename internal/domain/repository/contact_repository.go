package repository

import (
	"context"

	"institute/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrContactNotFound is returned when a contact message is not found.
var ErrContactNotFound = errors.New("contact message not found")

// ContactRepository defines the interface for contact message persistence.
type ContactRepository interface {
	// List retrieves a page of messages, newest first, plus the total count.
	List(ctx context.Context, opts ListOptions) ([]*entity.Contact, int64, error)

	// FindByID retrieves a single message by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error)

	// Create persists a new message.
	Create(ctx context.Context, msg *entity.Contact) error

	// UpdateStatus moves a message to a new handling status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ContactStatus) (*entity.Contact, error)

	// Delete removes a message by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

package repository

import (
	"context"

	"institute/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrServiceNotFound is returned when a service offering is not found.
var ErrServiceNotFound = errors.New("service not found")

// ServiceRepository defines the interface for service offering persistence.
type ServiceRepository interface {
	// List retrieves a page of offerings, newest first, plus the total count.
	List(ctx context.Context, opts ListOptions) ([]*entity.Service, int64, error)

	// FindByID retrieves a single offering by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)

	// Create persists a new offering.
	Create(ctx context.Context, svc *entity.Service) error

	// Update modifies an existing offering.
	Update(ctx context.Context, svc *entity.Service) error

	// Delete removes an offering by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

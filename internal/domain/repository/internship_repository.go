package repository

import (
	"context"

	"institute/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for internship persistence.
var (
	// ErrInternshipNotFound is returned when an internship track is not found.
	ErrInternshipNotFound = errors.New("internship not found")
	// ErrInternshipApplicationNotFound is returned when an internship application is not found.
	ErrInternshipApplicationNotFound = errors.New("internship application not found")
)

// InternshipRepository defines the interface for internship track persistence.
type InternshipRepository interface {
	// List retrieves a page of tracks, newest first, plus the total count.
	List(ctx context.Context, opts ListOptions) ([]*entity.Internship, int64, error)

	// FindByID retrieves a single track by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Internship, error)

	// Create persists a new track.
	Create(ctx context.Context, track *entity.Internship) error

	// Update modifies an existing track.
	Update(ctx context.Context, track *entity.Internship) error

	// Delete removes a track by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

// InternshipApplicationRepository defines the interface for internship application persistence.
type InternshipApplicationRepository interface {
	// List retrieves a page of applications, newest first, plus the total count.
	List(ctx context.Context, opts ListOptions) ([]*entity.InternshipApplication, int64, error)

	// FindByID retrieves a single application by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.InternshipApplication, error)

	// Create persists a new application.
	Create(ctx context.Context, app *entity.InternshipApplication) error

	// UpdateStatus moves an application to a new review status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ApplicationStatus) (*entity.InternshipApplication, error)

	// Delete removes an application by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

package repository

import (
	"context"

	"institute/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for job persistence.
var (
	// ErrJobNotFound is returned when a job opening is not found.
	ErrJobNotFound = errors.New("job not found")
	// ErrJobApplicationNotFound is returned when a job application is not found.
	ErrJobApplicationNotFound = errors.New("job application not found")
)

// JobRepository defines the interface for job opening persistence.
type JobRepository interface {
	// List retrieves a page of openings, newest first, plus the total count.
	List(ctx context.Context, opts ListOptions) ([]*entity.Job, int64, error)

	// FindByID retrieves a single opening by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Job, error)

	// Create persists a new opening.
	Create(ctx context.Context, job *entity.Job) error

	// Update modifies an existing opening.
	Update(ctx context.Context, job *entity.Job) error

	// Delete removes an opening by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

// JobApplicationRepository defines the interface for job application persistence.
type JobApplicationRepository interface {
	// List retrieves a page of applications, newest first, plus the total count.
	List(ctx context.Context, opts ListOptions) ([]*entity.JobApplication, int64, error)

	// FindByID retrieves a single application by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.JobApplication, error)

	// Create persists a new application.
	Create(ctx context.Context, app *entity.JobApplication) error

	// UpdateStatus moves an application to a new review status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ApplicationStatus) (*entity.JobApplication, error)

	// Delete removes an application by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

package repository

import (
	"context"

	"institute/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProjectNotFound is returned when a project is not found.
var ErrProjectNotFound = errors.New("project not found")

// ProjectFilter narrows project list queries.
type ProjectFilter struct {
	Category entity.ProjectCategory
}

// ProjectRepository defines the interface for portfolio project persistence.
type ProjectRepository interface {
	// List retrieves a page of projects, newest first, plus the total count for the filter.
	List(ctx context.Context, filter ProjectFilter, opts ListOptions) ([]*entity.Project, int64, error)

	// FindByID retrieves a single project by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)

	// Create persists a new project.
	Create(ctx context.Context, project *entity.Project) error

	// Update modifies an existing project.
	Update(ctx context.Context, project *entity.Project) error

	// Delete removes a project by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

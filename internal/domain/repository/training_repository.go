package repository

import (
	"context"

	"institute/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrTrainingNotFound is returned when a training program is not found.
var ErrTrainingNotFound = errors.New("training program not found")

// TrainingFilter narrows training list queries.
type TrainingFilter struct {
	Category entity.TrainingCategory
}

// TrainingRepository defines the interface for training program persistence.
type TrainingRepository interface {
	// List retrieves a page of programs, newest first, plus the total count for the filter.
	List(ctx context.Context, filter TrainingFilter, opts ListOptions) ([]*entity.Training, int64, error)

	// FindByID retrieves a single program by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Training, error)

	// Create persists a new program.
	Create(ctx context.Context, program *entity.Training) error

	// Update modifies an existing program.
	Update(ctx context.Context, program *entity.Training) error

	// Delete removes a program by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

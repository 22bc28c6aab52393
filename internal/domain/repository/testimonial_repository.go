package repository

import (
	"context"

	"institute/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrTestimonialNotFound is returned when a testimonial is not found.
var ErrTestimonialNotFound = errors.New("testimonial not found")

// TestimonialRepository defines the interface for testimonial persistence.
type TestimonialRepository interface {
	// List retrieves a page of testimonials, newest first, plus the total count.
	List(ctx context.Context, opts ListOptions) ([]*entity.Testimonial, int64, error)

	// FindByID retrieves a single testimonial by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error)

	// Create persists a new testimonial.
	Create(ctx context.Context, t *entity.Testimonial) error

	// Update modifies an existing testimonial.
	Update(ctx context.Context, t *entity.Testimonial) error

	// Delete removes a testimonial by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"institute/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrBlogNotFound is returned when a blog post is not found.
var ErrBlogNotFound = errors.New("blog post not found")

// BlogFilter narrows blog list queries.
type BlogFilter struct {
	Category string
	Search   string
}

// BlogRepository defines the interface for blog post persistence.
type BlogRepository interface {
	// List retrieves a page of posts, newest first, plus the total count for the filter.
	List(ctx context.Context, filter BlogFilter, opts ListOptions) ([]*entity.Blog, int64, error)

	// FindByID retrieves a single post by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Blog, error)

	// Create persists a new post.
	Create(ctx context.Context, post *entity.Blog) error

	// Update modifies an existing post.
	Update(ctx context.Context, post *entity.Blog) error

	// Delete removes a post by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

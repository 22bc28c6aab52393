package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"institute/internal/domain/entity"
	"institute/internal/domain/repository"
	"institute/internal/pagination"
)

// CreateBlogInput defines the data required to publish a blog post.
type CreateBlogInput struct {
	Title    string
	Excerpt  string
	Content  string
	Author   string
	Date     *time.Time
	Category string
	Image    string
}

// UpdateBlogInput carries partial edits to a blog post; nil fields are left
// untouched.
type UpdateBlogInput struct {
	Title    *string
	Excerpt  *string
	Content  *string
	Author   *string
	Date     *time.Time
	Category *string
	Image    *string
}

// BlogUsecase defines the blog content operations.
type BlogUsecase interface {
	List(ctx context.Context, filter repository.BlogFilter, opts pagination.Options) ([]*entity.Blog, *pagination.Pagination, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Blog, error)
	Create(ctx context.Context, input CreateBlogInput) (*entity.Blog, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateBlogInput) (*entity.Blog, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

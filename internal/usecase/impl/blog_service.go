package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"institute/internal/domain/entity"
	domainerrors "institute/internal/domain/errors"
	"institute/internal/domain/repository"
	"institute/internal/pagination"
	"institute/internal/usecase"
)

// blogService implements the BlogUsecase interface.
type blogService struct {
	blogs  repository.BlogRepository
	logger *slog.Logger
}

// NewBlogService is the constructor for blogService.
func NewBlogService(blogs repository.BlogRepository, logger *slog.Logger) usecase.BlogUsecase {
	return &blogService{
		blogs:  blogs,
		logger: logger,
	}
}

// List retrieves a page of posts for the given filter.
func (srv *blogService) List(ctx context.Context, filter repository.BlogFilter, opts pagination.Options) ([]*entity.Blog, *pagination.Pagination, error) {
	posts, total, err := srv.blogs.List(ctx, filter, repository.ListOptions{
		Offset: opts.Offset(),
		Limit:  opts.PageSize,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list blog posts")
	}

	return posts, pagination.New(total, opts), nil
}

// Get loads a single post by ID.
func (srv *blogService) Get(ctx context.Context, id uuid.UUID) (*entity.Blog, error) {
	post, err := srv.blogs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return nil, domainerrors.NewNotFoundError("Blog post")
		}

		return nil, errors.Wrap(err, "failed to load blog post")
	}

	return post, nil
}

// Create publishes a new post. A missing date defaults to now.
func (srv *blogService) Create(ctx context.Context, input usecase.CreateBlogInput) (*entity.Blog, error) {
	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}

	post := &entity.Blog{
		Title:    input.Title,
		Excerpt:  input.Excerpt,
		Content:  input.Content,
		Author:   input.Author,
		Date:     date,
		Category: input.Category,
		Image:    input.Image,
	}

	if err := srv.blogs.Create(ctx, post); err != nil {
		return nil, err
	}

	srv.logger.Info("Blog post created", "blogID", post.ID, "title", post.Title)

	return post, nil
}

// Update applies partial edits to a post.
func (srv *blogService) Update(ctx context.Context, id uuid.UUID, input usecase.UpdateBlogInput) (*entity.Blog, error) {
	post, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Excerpt != nil {
		post.Excerpt = *input.Excerpt
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.Author != nil {
		post.Author = *input.Author
	}
	if input.Date != nil {
		post.Date = *input.Date
	}
	if input.Category != nil {
		post.Category = *input.Category
	}
	if input.Image != nil {
		post.Image = *input.Image
	}

	if err := srv.blogs.Update(ctx, post); err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return nil, domainerrors.NewNotFoundError("Blog post")
		}

		return nil, err
	}

	return post, nil
}

// Delete removes a post.
func (srv *blogService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.blogs.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return domainerrors.NewNotFoundError("Blog post")
		}

		return errors.Wrap(err, "failed to delete blog post")
	}

	srv.logger.Info("Blog post deleted", "blogID", id)

	return nil
}

package postgres

import (
	"context"

	"institute/internal/domain/entity"
	domainerrors "institute/internal/domain/errors"
	"institute/internal/domain/repository"
	"institute/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// blogRepository implements the repository.BlogRepository interface.
type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository is the constructor for blogRepository.
func NewBlogRepository(db *gorm.DB) repository.BlogRepository {
	return &blogRepository{
		db: db,
	}
}

// List retrieves a page of posts, newest first, plus the total count for the filter.
func (repo *blogRepository) List(ctx context.Context, filter repository.BlogFilter, opts repository.ListOptions) ([]*entity.Blog, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.BlogModel{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count blog posts")
	}

	var blogModels []*model.BlogModel
	if err := query.
		Order("date DESC").
		Offset(opts.Offset).
		Limit(opts.Limit).
		Find(&blogModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list blog posts")
	}

	posts := make([]*entity.Blog, 0, len(blogModels))
	for _, blogM := range blogModels {
		posts = append(posts, toBlogDomain(blogM))
	}

	return posts, total, nil
}

// FindByID retrieves a single post by its unique ID.
func (repo *blogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Blog, error) {
	var blogM model.BlogModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&blogM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBlogNotFound
		}

		return nil, errors.Wrap(err, "failed to find blog post by ID")
	}

	return toBlogDomain(&blogM), nil
}

// Create persists a new post.
func (repo *blogRepository) Create(ctx context.Context, post *entity.Blog) error {
	blogM := fromBlogDomain(post)

	if err := repo.db.WithContext(ctx).Create(blogM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create blog post")
	}

	post.ID = blogM.ID
	post.CreatedAt = blogM.CreatedAt
	post.UpdatedAt = blogM.UpdatedAt

	return nil
}

// Update modifies an existing post.
func (repo *blogRepository) Update(ctx context.Context, post *entity.Blog) error {
	blogM := fromBlogDomain(post)

	result := repo.db.WithContext(ctx).
		Model(&model.BlogModel{}).
		Where("id = ?", blogM.ID).
		Select("title", "excerpt", "content", "author", "date", "category", "image").
		Updates(blogM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update blog post")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBlogNotFound
	}

	return nil
}

// Delete removes a post by ID.
func (repo *blogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BlogModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete blog post")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBlogNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toBlogDomain converts a GORM BlogModel to a domain Blog entity.
func toBlogDomain(data *model.BlogModel) *entity.Blog {
	if data == nil {
		return nil
	}

	return &entity.Blog{
		ID:        data.ID,
		Title:     data.Title,
		Excerpt:   data.Excerpt,
		Content:   data.Content,
		Author:    data.Author,
		Date:      data.Date,
		Category:  data.Category,
		Image:     data.Image,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromBlogDomain converts a domain Blog entity to a GORM BlogModel.
func fromBlogDomain(data *entity.Blog) *model.BlogModel {
	if data == nil {
		return nil
	}

	return &model.BlogModel{
		ID:        data.ID,
		Title:     data.Title,
		Excerpt:   data.Excerpt,
		Content:   data.Content,
		Author:    data.Author,
		Date:      data.Date,
		Category:  data.Category,
		Image:     data.Image,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

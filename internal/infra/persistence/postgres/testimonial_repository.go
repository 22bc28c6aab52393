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

// testimonialRepository implements the repository.TestimonialRepository interface.
type testimonialRepository struct {
	db *gorm.DB
}

// NewTestimonialRepository is the constructor for testimonialRepository.
func NewTestimonialRepository(db *gorm.DB) repository.TestimonialRepository {
	return &testimonialRepository{
		db: db,
	}
}

// List retrieves a page of testimonials, newest first, plus the total count.
func (repo *testimonialRepository) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Testimonial, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.TestimonialModel{}).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count testimonials")
	}

	var tModels []*model.TestimonialModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(opts.Offset).
		Limit(opts.Limit).
		Find(&tModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list testimonials")
	}

	testimonials := make([]*entity.Testimonial, 0, len(tModels))
	for _, tM := range tModels {
		testimonials = append(testimonials, toTestimonialDomain(tM))
	}

	return testimonials, total, nil
}

// FindByID retrieves a single testimonial by its unique ID.
func (repo *testimonialRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error) {
	var tM model.TestimonialModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTestimonialNotFound
		}

		return nil, errors.Wrap(err, "failed to find testimonial by ID")
	}

	return toTestimonialDomain(&tM), nil
}

// Create persists a new testimonial.
func (repo *testimonialRepository) Create(ctx context.Context, t *entity.Testimonial) error {
	tM := fromTestimonialDomain(t)

	if err := repo.db.WithContext(ctx).Create(tM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create testimonial")
	}

	t.ID = tM.ID
	t.CreatedAt = tM.CreatedAt
	t.UpdatedAt = tM.UpdatedAt

	return nil
}

// Update modifies an existing testimonial.
func (repo *testimonialRepository) Update(ctx context.Context, t *entity.Testimonial) error {
	tM := fromTestimonialDomain(t)

	result := repo.db.WithContext(ctx).
		Model(&model.TestimonialModel{}).
		Where("id = ?", tM.ID).
		Select("name", "title", "quote", "avatar").
		Updates(tM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update testimonial")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTestimonialNotFound
	}

	return nil
}

// Delete removes a testimonial by ID.
func (repo *testimonialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TestimonialModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete testimonial")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTestimonialNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toTestimonialDomain(data *model.TestimonialModel) *entity.Testimonial {
	if data == nil {
		return nil
	}

	return &entity.Testimonial{
		ID:        data.ID,
		Name:      data.Name,
		Title:     data.Title,
		Quote:     data.Quote,
		Avatar:    data.Avatar,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromTestimonialDomain(data *entity.Testimonial) *model.TestimonialModel {
	if data == nil {
		return nil
	}

	return &model.TestimonialModel{
		ID:        data.ID,
		Name:      data.Name,
		Title:     data.Title,
		Quote:     data.Quote,
		Avatar:    data.Avatar,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

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

// serviceRepository implements the repository.ServiceRepository interface.
type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository is the constructor for serviceRepository.
func NewServiceRepository(db *gorm.DB) repository.ServiceRepository {
	return &serviceRepository{
		db: db,
	}
}

// List retrieves a page of offerings, newest first, plus the total count.
func (repo *serviceRepository) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Service, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count services")
	}

	var svcModels []*model.ServiceModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(opts.Offset).
		Limit(opts.Limit).
		Find(&svcModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list services")
	}

	services := make([]*entity.Service, 0, len(svcModels))
	for _, svcM := range svcModels {
		services = append(services, toServiceDomain(svcM))
	}

	return services, total, nil
}

// FindByID retrieves a single offering by its unique ID.
func (repo *serviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	var svcM model.ServiceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&svcM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service by ID")
	}

	return toServiceDomain(&svcM), nil
}

// Create persists a new offering.
func (repo *serviceRepository) Create(ctx context.Context, svc *entity.Service) error {
	svcM := fromServiceDomain(svc)

	if err := repo.db.WithContext(ctx).Create(svcM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create service")
	}

	svc.ID = svcM.ID
	svc.CreatedAt = svcM.CreatedAt
	svc.UpdatedAt = svcM.UpdatedAt

	return nil
}

// Update modifies an existing offering.
func (repo *serviceRepository) Update(ctx context.Context, svc *entity.Service) error {
	svcM := fromServiceDomain(svc)

	result := repo.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Where("id = ?", svcM.ID).
		Select("title", "description", "features", "icon", "image").
		Updates(svcM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update service")
	}

	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

// Delete removes an offering by ID.
func (repo *serviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ServiceModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete service")
	}

	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toServiceDomain(data *model.ServiceModel) *entity.Service {
	if data == nil {
		return nil
	}

	return &entity.Service{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Features:    data.Features,
		Icon:        data.Icon,
		Image:       data.Image,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromServiceDomain(data *entity.Service) *model.ServiceModel {
	if data == nil {
		return nil
	}

	return &model.ServiceModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Features:    data.Features,
		Icon:        data.Icon,
		Image:       data.Image,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

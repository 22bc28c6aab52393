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

// trainingRepository implements the repository.TrainingRepository interface.
type trainingRepository struct {
	db *gorm.DB
}

// NewTrainingRepository is the constructor for trainingRepository.
func NewTrainingRepository(db *gorm.DB) repository.TrainingRepository {
	return &trainingRepository{
		db: db,
	}
}

// List retrieves a page of programs, newest first, plus the total count for the filter.
func (repo *trainingRepository) List(ctx context.Context, filter repository.TrainingFilter, opts repository.ListOptions) ([]*entity.Training, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.TrainingModel{})
	if filter.Category != "" {
		query = query.Where("category = ?", string(filter.Category))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count training programs")
	}

	var programModels []*model.TrainingModel
	if err := query.
		Order("created_at DESC").
		Offset(opts.Offset).
		Limit(opts.Limit).
		Find(&programModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list training programs")
	}

	programs := make([]*entity.Training, 0, len(programModels))
	for _, programM := range programModels {
		programs = append(programs, toTrainingDomain(programM))
	}

	return programs, total, nil
}

// FindByID retrieves a single program by its unique ID.
func (repo *trainingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Training, error) {
	var programM model.TrainingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&programM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTrainingNotFound
		}

		return nil, errors.Wrap(err, "failed to find training program by ID")
	}

	return toTrainingDomain(&programM), nil
}

// Create persists a new program.
func (repo *trainingRepository) Create(ctx context.Context, program *entity.Training) error {
	programM := fromTrainingDomain(program)

	if err := repo.db.WithContext(ctx).Create(programM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create training program")
	}

	program.ID = programM.ID
	program.CreatedAt = programM.CreatedAt
	program.UpdatedAt = programM.UpdatedAt

	return nil
}

// Update modifies an existing program.
func (repo *trainingRepository) Update(ctx context.Context, program *entity.Training) error {
	programM := fromTrainingDomain(program)

	result := repo.db.WithContext(ctx).
		Model(&model.TrainingModel{}).
		Where("id = ?", programM.ID).
		Select("title", "category", "description", "features", "icon").
		Updates(programM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update training program")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTrainingNotFound
	}

	return nil
}

// Delete removes a program by ID.
func (repo *trainingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TrainingModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete training program")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTrainingNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toTrainingDomain(data *model.TrainingModel) *entity.Training {
	if data == nil {
		return nil
	}

	return &entity.Training{
		ID:          data.ID,
		Title:       data.Title,
		Category:    entity.TrainingCategory(data.Category),
		Description: data.Description,
		Features:    data.Features,
		Icon:        data.Icon,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromTrainingDomain(data *entity.Training) *model.TrainingModel {
	if data == nil {
		return nil
	}

	return &model.TrainingModel{
		ID:          data.ID,
		Title:       data.Title,
		Category:    string(data.Category),
		Description: data.Description,
		Features:    data.Features,
		Icon:        data.Icon,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

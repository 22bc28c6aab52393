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

// internshipRepository implements the repository.InternshipRepository interface.
type internshipRepository struct {
	db *gorm.DB
}

// NewInternshipRepository is the constructor for internshipRepository.
func NewInternshipRepository(db *gorm.DB) repository.InternshipRepository {
	return &internshipRepository{
		db: db,
	}
}

// List retrieves a page of tracks, newest first, plus the total count.
func (repo *internshipRepository) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Internship, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.InternshipModel{}).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count internships")
	}

	var trackModels []*model.InternshipModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(opts.Offset).
		Limit(opts.Limit).
		Find(&trackModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list internships")
	}

	tracks := make([]*entity.Internship, 0, len(trackModels))
	for _, trackM := range trackModels {
		tracks = append(tracks, toInternshipDomain(trackM))
	}

	return tracks, total, nil
}

// FindByID retrieves a single track by its unique ID.
func (repo *internshipRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Internship, error) {
	var trackM model.InternshipModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&trackM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInternshipNotFound
		}

		return nil, errors.Wrap(err, "failed to find internship by ID")
	}

	return toInternshipDomain(&trackM), nil
}

// Create persists a new track.
func (repo *internshipRepository) Create(ctx context.Context, track *entity.Internship) error {
	trackM := fromInternshipDomain(track)

	if err := repo.db.WithContext(ctx).Create(trackM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create internship")
	}

	track.ID = trackM.ID
	track.CreatedAt = trackM.CreatedAt
	track.UpdatedAt = trackM.UpdatedAt

	return nil
}

// Update modifies an existing track.
func (repo *internshipRepository) Update(ctx context.Context, track *entity.Internship) error {
	trackM := fromInternshipDomain(track)

	result := repo.db.WithContext(ctx).
		Model(&model.InternshipModel{}).
		Where("id = ?", trackM.ID).
		Select("title", "duration", "mode", "skills", "description", "image").
		Updates(trackM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update internship")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInternshipNotFound
	}

	return nil
}

// Delete removes a track by ID.
func (repo *internshipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.InternshipModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete internship")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInternshipNotFound
	}

	return nil
}

// internshipApplicationRepository implements the repository.InternshipApplicationRepository interface.
type internshipApplicationRepository struct {
	db *gorm.DB
}

// NewInternshipApplicationRepository is the constructor for internshipApplicationRepository.
func NewInternshipApplicationRepository(db *gorm.DB) repository.InternshipApplicationRepository {
	return &internshipApplicationRepository{
		db: db,
	}
}

// List retrieves a page of applications, newest first, plus the total count.
func (repo *internshipApplicationRepository) List(ctx context.Context, opts repository.ListOptions) ([]*entity.InternshipApplication, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.InternshipApplicationModel{}).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count internship applications")
	}

	var appModels []*model.InternshipApplicationModel
	if err := repo.db.WithContext(ctx).
		Order("date DESC").
		Offset(opts.Offset).
		Limit(opts.Limit).
		Find(&appModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list internship applications")
	}

	apps := make([]*entity.InternshipApplication, 0, len(appModels))
	for _, appM := range appModels {
		apps = append(apps, toInternshipApplicationDomain(appM))
	}

	return apps, total, nil
}

// FindByID retrieves a single application by its unique ID.
func (repo *internshipApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.InternshipApplication, error) {
	var appM model.InternshipApplicationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&appM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInternshipApplicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find internship application by ID")
	}

	return toInternshipApplicationDomain(&appM), nil
}

// Create persists a new application.
func (repo *internshipApplicationRepository) Create(ctx context.Context, app *entity.InternshipApplication) error {
	appM := fromInternshipApplicationDomain(app)

	if err := repo.db.WithContext(ctx).Create(appM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrInternshipNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create internship application")
	}

	app.ID = appM.ID
	app.CreatedAt = appM.CreatedAt
	app.UpdatedAt = appM.UpdatedAt

	return nil
}

// UpdateStatus moves an application to a new review status and returns the updated row.
func (repo *internshipApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ApplicationStatus) (*entity.InternshipApplication, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.InternshipApplicationModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update internship application status")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrInternshipApplicationNotFound
	}

	return repo.FindByID(ctx, id)
}

// Delete removes an application by ID.
func (repo *internshipApplicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.InternshipApplicationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete internship application")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInternshipApplicationNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toInternshipDomain(data *model.InternshipModel) *entity.Internship {
	if data == nil {
		return nil
	}

	return &entity.Internship{
		ID:          data.ID,
		Title:       data.Title,
		Duration:    data.Duration,
		Mode:        entity.InternshipMode(data.Mode),
		Skills:      data.Skills,
		Description: data.Description,
		Image:       data.Image,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromInternshipDomain(data *entity.Internship) *model.InternshipModel {
	if data == nil {
		return nil
	}

	return &model.InternshipModel{
		ID:          data.ID,
		Title:       data.Title,
		Duration:    data.Duration,
		Mode:        string(data.Mode),
		Skills:      data.Skills,
		Description: data.Description,
		Image:       data.Image,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toInternshipApplicationDomain(data *model.InternshipApplicationModel) *entity.InternshipApplication {
	if data == nil {
		return nil
	}

	return &entity.InternshipApplication{
		ID:           data.ID,
		InternshipID: data.InternshipID,
		StudentID:    data.StudentID,
		Name:         data.Name,
		Email:        data.Email,
		Phone:        data.Phone,
		Course:       data.Course,
		ResumeName:   data.ResumeName,
		ResumePath:   data.ResumePath,
		Message:      data.Message,
		Status:       entity.ApplicationStatus(data.Status),
		Date:         data.Date,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromInternshipApplicationDomain(data *entity.InternshipApplication) *model.InternshipApplicationModel {
	if data == nil {
		return nil
	}

	return &model.InternshipApplicationModel{
		ID:           data.ID,
		InternshipID: data.InternshipID,
		StudentID:    data.StudentID,
		Name:         data.Name,
		Email:        data.Email,
		Phone:        data.Phone,
		Course:       data.Course,
		ResumeName:   data.ResumeName,
		ResumePath:   data.ResumePath,
		Message:      data.Message,
		Status:       string(data.Status),
		Date:         data.Date,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

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

// jobRepository implements the repository.JobRepository interface.
type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository is the constructor for jobRepository.
func NewJobRepository(db *gorm.DB) repository.JobRepository {
	return &jobRepository{
		db: db,
	}
}

// List retrieves a page of openings, newest first, plus the total count.
func (repo *jobRepository) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Job, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.JobModel{}).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count jobs")
	}

	var jobModels []*model.JobModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(opts.Offset).
		Limit(opts.Limit).
		Find(&jobModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list jobs")
	}

	jobs := make([]*entity.Job, 0, len(jobModels))
	for _, jobM := range jobModels {
		jobs = append(jobs, toJobDomain(jobM))
	}

	return jobs, total, nil
}

// FindByID retrieves a single opening by its unique ID.
func (repo *jobRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	var jobM model.JobModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&jobM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrJobNotFound
		}

		return nil, errors.Wrap(err, "failed to find job by ID")
	}

	return toJobDomain(&jobM), nil
}

// Create persists a new opening.
func (repo *jobRepository) Create(ctx context.Context, job *entity.Job) error {
	jobM := fromJobDomain(job)

	if err := repo.db.WithContext(ctx).Create(jobM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create job")
	}

	job.ID = jobM.ID
	job.CreatedAt = jobM.CreatedAt
	job.UpdatedAt = jobM.UpdatedAt

	return nil
}

// Update modifies an existing opening.
func (repo *jobRepository) Update(ctx context.Context, job *entity.Job) error {
	jobM := fromJobDomain(job)

	result := repo.db.WithContext(ctx).
		Model(&model.JobModel{}).
		Where("id = ?", jobM.ID).
		Select("title", "department", "type", "location", "description").
		Updates(jobM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update job")
	}

	if result.RowsAffected == 0 {
		return repository.ErrJobNotFound
	}

	return nil
}

// Delete removes an opening by ID.
func (repo *jobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.JobModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete job")
	}

	if result.RowsAffected == 0 {
		return repository.ErrJobNotFound
	}

	return nil
}

// jobApplicationRepository implements the repository.JobApplicationRepository interface.
type jobApplicationRepository struct {
	db *gorm.DB
}

// NewJobApplicationRepository is the constructor for jobApplicationRepository.
func NewJobApplicationRepository(db *gorm.DB) repository.JobApplicationRepository {
	return &jobApplicationRepository{
		db: db,
	}
}

// List retrieves a page of applications, newest first, plus the total count.
func (repo *jobApplicationRepository) List(ctx context.Context, opts repository.ListOptions) ([]*entity.JobApplication, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.JobApplicationModel{}).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count job applications")
	}

	var appModels []*model.JobApplicationModel
	if err := repo.db.WithContext(ctx).
		Order("date DESC").
		Offset(opts.Offset).
		Limit(opts.Limit).
		Find(&appModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list job applications")
	}

	apps := make([]*entity.JobApplication, 0, len(appModels))
	for _, appM := range appModels {
		apps = append(apps, toJobApplicationDomain(appM))
	}

	return apps, total, nil
}

// FindByID retrieves a single application by its unique ID.
func (repo *jobApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.JobApplication, error) {
	var appM model.JobApplicationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&appM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrJobApplicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find job application by ID")
	}

	return toJobApplicationDomain(&appM), nil
}

// Create persists a new application.
func (repo *jobApplicationRepository) Create(ctx context.Context, app *entity.JobApplication) error {
	appM := fromJobApplicationDomain(app)

	if err := repo.db.WithContext(ctx).Create(appM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrJobNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create job application")
	}

	app.ID = appM.ID
	app.CreatedAt = appM.CreatedAt
	app.UpdatedAt = appM.UpdatedAt

	return nil
}

// UpdateStatus moves an application to a new review status and returns the updated row.
func (repo *jobApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ApplicationStatus) (*entity.JobApplication, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.JobApplicationModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update job application status")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrJobApplicationNotFound
	}

	return repo.FindByID(ctx, id)
}

// Delete removes an application by ID.
func (repo *jobApplicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.JobApplicationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete job application")
	}

	if result.RowsAffected == 0 {
		return repository.ErrJobApplicationNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toJobDomain(data *model.JobModel) *entity.Job {
	if data == nil {
		return nil
	}

	return &entity.Job{
		ID:          data.ID,
		Title:       data.Title,
		Department:  data.Department,
		Type:        entity.JobType(data.Type),
		Location:    entity.JobLocation(data.Location),
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromJobDomain(data *entity.Job) *model.JobModel {
	if data == nil {
		return nil
	}

	return &model.JobModel{
		ID:          data.ID,
		Title:       data.Title,
		Department:  data.Department,
		Type:        string(data.Type),
		Location:    string(data.Location),
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toJobApplicationDomain(data *model.JobApplicationModel) *entity.JobApplication {
	if data == nil {
		return nil
	}

	return &entity.JobApplication{
		ID:          data.ID,
		JobID:       data.JobID,
		UserID:      data.UserID,
		JobTitle:    data.JobTitle,
		Name:        data.Name,
		Email:       data.Email,
		Phone:       data.Phone,
		ResumeName:  data.ResumeName,
		ResumePath:  data.ResumePath,
		CoverLetter: data.CoverLetter,
		Status:      entity.ApplicationStatus(data.Status),
		Date:        data.Date,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromJobApplicationDomain(data *entity.JobApplication) *model.JobApplicationModel {
	if data == nil {
		return nil
	}

	return &model.JobApplicationModel{
		ID:          data.ID,
		JobID:       data.JobID,
		UserID:      data.UserID,
		JobTitle:    data.JobTitle,
		Name:        data.Name,
		Email:       data.Email,
		Phone:       data.Phone,
		ResumeName:  data.ResumeName,
		ResumePath:  data.ResumePath,
		CoverLetter: data.CoverLetter,
		Status:      string(data.Status),
		Date:        data.Date,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

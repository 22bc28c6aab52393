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
	"institute/internal/domain/service"
	"institute/internal/pagination"
	"institute/internal/usecase"
)

// jobService implements the JobUsecase interface.
type jobService struct {
	jobs         repository.JobRepository
	applications repository.JobApplicationRepository
	files        service.FileStore
	logger       *slog.Logger
}

// NewJobService is the constructor for jobService.
func NewJobService(
	jobs repository.JobRepository,
	applications repository.JobApplicationRepository,
	files service.FileStore,
	logger *slog.Logger,
) usecase.JobUsecase {
	return &jobService{
		jobs:         jobs,
		applications: applications,
		files:        files,
		logger:       logger,
	}
}

func (srv *jobService) List(ctx context.Context, opts pagination.Options) ([]*entity.Job, *pagination.Pagination, error) {
	jobs, total, err := srv.jobs.List(ctx, repository.ListOptions{
		Offset: opts.Offset(),
		Limit:  opts.PageSize,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list jobs")
	}

	return jobs, pagination.New(total, opts), nil
}

func (srv *jobService) Get(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	job, err := srv.jobs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, domainerrors.NewNotFoundError("Job")
		}

		return nil, errors.Wrap(err, "failed to load job")
	}

	return job, nil
}

func (srv *jobService) Create(ctx context.Context, input usecase.CreateJobInput) (*entity.Job, error) {
	job := &entity.Job{
		Title:       input.Title,
		Department:  input.Department,
		Type:        input.Type,
		Location:    input.Location,
		Description: input.Description,
	}

	if err := srv.jobs.Create(ctx, job); err != nil {
		return nil, err
	}

	srv.logger.Info("Job created", "jobID", job.ID, "title", job.Title)

	return job, nil
}

func (srv *jobService) Update(ctx context.Context, id uuid.UUID, input usecase.UpdateJobInput) (*entity.Job, error) {
	job, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		job.Title = *input.Title
	}
	if input.Department != nil {
		job.Department = *input.Department
	}
	if input.Type != nil {
		job.Type = *input.Type
	}
	if input.Location != nil {
		job.Location = *input.Location
	}
	if input.Description != nil {
		job.Description = *input.Description
	}

	if err := srv.jobs.Update(ctx, job); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, domainerrors.NewNotFoundError("Job")
		}

		return nil, err
	}

	return job, nil
}

func (srv *jobService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.jobs.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return domainerrors.NewNotFoundError("Job")
		}

		return errors.Wrap(err, "failed to delete job")
	}

	srv.logger.Info("Job deleted", "jobID", id)

	return nil
}

// Apply submits an application against an opening. The opening must exist;
// its title is denormalized onto the application.
func (srv *jobService) Apply(ctx context.Context, jobID uuid.UUID, input usecase.ApplyJobInput) (*entity.JobApplication, error) {
	job, err := srv.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if input.Resume == nil {
		return nil, domainerrors.NewValidationError([]domainerrors.FieldError{
			{Field: "resume", Message: "Resume file is required"},
		})
	}

	key, err := srv.files.Save(ctx, service.UploadJobResume, input.Resume.Filename, input.Resume.Content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store resume")
	}

	app := &entity.JobApplication{
		JobID:       job.ID,
		UserID:      input.UserID,
		JobTitle:    job.Title,
		Name:        input.Name,
		Email:       normalizeEmail(input.Email),
		Phone:       input.Phone,
		ResumeName:  input.Resume.Filename,
		ResumePath:  key,
		CoverLetter: input.CoverLetter,
		Status:      entity.ApplicationPending,
		Date:        time.Now(),
	}

	if err := srv.applications.Create(ctx, app); err != nil {
		// The stored resume is orphaned otherwise.
		if delErr := srv.files.Delete(ctx, key); delErr != nil {
			srv.logger.Warn("Failed to clean up resume after application error", "key", key, "error", delErr)
		}

		return nil, err
	}

	srv.logger.Info("Job application submitted", "applicationID", app.ID, "jobID", job.ID)

	return app, nil
}

func (srv *jobService) ListApplications(ctx context.Context, opts pagination.Options) ([]*entity.JobApplication, *pagination.Pagination, error) {
	apps, total, err := srv.applications.List(ctx, repository.ListOptions{
		Offset: opts.Offset(),
		Limit:  opts.PageSize,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list job applications")
	}

	return apps, pagination.New(total, opts), nil
}

func (srv *jobService) GetApplication(ctx context.Context, id uuid.UUID) (*entity.JobApplication, error) {
	app, err := srv.applications.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobApplicationNotFound) {
			return nil, domainerrors.NewNotFoundError("Job application")
		}

		return nil, errors.Wrap(err, "failed to load job application")
	}

	return app, nil
}

func (srv *jobService) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status entity.ApplicationStatus) (*entity.JobApplication, error) {
	if !status.IsValid() {
		return nil, domainerrors.NewValidationError([]domainerrors.FieldError{
			{Field: "status", Message: "Status must be Pending, Approved or Rejected"},
		})
	}

	app, err := srv.applications.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrJobApplicationNotFound) {
			return nil, domainerrors.NewNotFoundError("Job application")
		}

		return nil, errors.Wrap(err, "failed to update job application status")
	}

	srv.logger.Info("Job application status updated", "applicationID", id, "status", status)

	return app, nil
}

// DeleteApplication removes the application and best-effort deletes its
// stored resume.
func (srv *jobService) DeleteApplication(ctx context.Context, id uuid.UUID) error {
	app, err := srv.GetApplication(ctx, id)
	if err != nil {
		return err
	}

	if err := srv.applications.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrJobApplicationNotFound) {
			return domainerrors.NewNotFoundError("Job application")
		}

		return errors.Wrap(err, "failed to delete job application")
	}

	if app.ResumePath != "" {
		if err := srv.files.Delete(ctx, app.ResumePath); err != nil {
			srv.logger.Warn("Failed to delete resume for removed application", "key", app.ResumePath, "error", err)
		}
	}

	srv.logger.Info("Job application deleted", "applicationID", id)

	return nil
}

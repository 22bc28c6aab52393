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

// internshipService implements the InternshipUsecase interface.
type internshipService struct {
	internships  repository.InternshipRepository
	applications repository.InternshipApplicationRepository
	files        service.FileStore
	logger       *slog.Logger
}

// NewInternshipService is the constructor for internshipService.
func NewInternshipService(
	internships repository.InternshipRepository,
	applications repository.InternshipApplicationRepository,
	files service.FileStore,
	logger *slog.Logger,
) usecase.InternshipUsecase {
	return &internshipService{
		internships:  internships,
		applications: applications,
		files:        files,
		logger:       logger,
	}
}

func (srv *internshipService) List(ctx context.Context, opts pagination.Options) ([]*entity.Internship, *pagination.Pagination, error) {
	tracks, total, err := srv.internships.List(ctx, repository.ListOptions{
		Offset: opts.Offset(),
		Limit:  opts.PageSize,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list internships")
	}

	return tracks, pagination.New(total, opts), nil
}

func (srv *internshipService) Get(ctx context.Context, id uuid.UUID) (*entity.Internship, error) {
	track, err := srv.internships.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInternshipNotFound) {
			return nil, domainerrors.NewNotFoundError("Internship")
		}

		return nil, errors.Wrap(err, "failed to load internship")
	}

	return track, nil
}

func (srv *internshipService) Create(ctx context.Context, input usecase.CreateInternshipInput) (*entity.Internship, error) {
	track := &entity.Internship{
		Title:       input.Title,
		Duration:    input.Duration,
		Mode:        input.Mode,
		Skills:      input.Skills,
		Description: input.Description,
		Image:       input.Image,
	}

	if err := srv.internships.Create(ctx, track); err != nil {
		return nil, err
	}

	srv.logger.Info("Internship created", "internshipID", track.ID, "title", track.Title)

	return track, nil
}

func (srv *internshipService) Update(ctx context.Context, id uuid.UUID, input usecase.UpdateInternshipInput) (*entity.Internship, error) {
	track, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		track.Title = *input.Title
	}
	if input.Duration != nil {
		track.Duration = *input.Duration
	}
	if input.Mode != nil {
		track.Mode = *input.Mode
	}
	if input.Skills != nil {
		track.Skills = input.Skills
	}
	if input.Description != nil {
		track.Description = *input.Description
	}
	if input.Image != nil {
		track.Image = *input.Image
	}

	if err := srv.internships.Update(ctx, track); err != nil {
		if errors.Is(err, repository.ErrInternshipNotFound) {
			return nil, domainerrors.NewNotFoundError("Internship")
		}

		return nil, err
	}

	return track, nil
}

func (srv *internshipService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.internships.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrInternshipNotFound) {
			return domainerrors.NewNotFoundError("Internship")
		}

		return errors.Wrap(err, "failed to delete internship")
	}

	srv.logger.Info("Internship deleted", "internshipID", id)

	return nil
}

// Apply submits an application against a track. The track must exist; its
// title is captured as the application's course.
func (srv *internshipService) Apply(ctx context.Context, internshipID uuid.UUID, input usecase.ApplyInternshipInput) (*entity.InternshipApplication, error) {
	track, err := srv.Get(ctx, internshipID)
	if err != nil {
		return nil, err
	}

	if input.Resume == nil {
		return nil, domainerrors.NewValidationError([]domainerrors.FieldError{
			{Field: "resume", Message: "Resume file is required"},
		})
	}

	key, err := srv.files.Save(ctx, service.UploadInternshipResume, input.Resume.Filename, input.Resume.Content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store resume")
	}

	app := &entity.InternshipApplication{
		InternshipID: track.ID,
		StudentID:    input.StudentID,
		Name:         input.Name,
		Email:        normalizeEmail(input.Email),
		Phone:        input.Phone,
		Course:       track.Title,
		ResumeName:   input.Resume.Filename,
		ResumePath:   key,
		Message:      input.Message,
		Status:       entity.ApplicationPending,
		Date:         time.Now(),
	}

	if err := srv.applications.Create(ctx, app); err != nil {
		if delErr := srv.files.Delete(ctx, key); delErr != nil {
			srv.logger.Warn("Failed to clean up resume after application error", "key", key, "error", delErr)
		}

		return nil, err
	}

	srv.logger.Info("Internship application submitted", "applicationID", app.ID, "internshipID", track.ID)

	return app, nil
}

func (srv *internshipService) ListApplications(ctx context.Context, opts pagination.Options) ([]*entity.InternshipApplication, *pagination.Pagination, error) {
	apps, total, err := srv.applications.List(ctx, repository.ListOptions{
		Offset: opts.Offset(),
		Limit:  opts.PageSize,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list internship applications")
	}

	return apps, pagination.New(total, opts), nil
}

func (srv *internshipService) GetApplication(ctx context.Context, id uuid.UUID) (*entity.InternshipApplication, error) {
	app, err := srv.applications.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInternshipApplicationNotFound) {
			return nil, domainerrors.NewNotFoundError("Internship application")
		}

		return nil, errors.Wrap(err, "failed to load internship application")
	}

	return app, nil
}

func (srv *internshipService) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status entity.ApplicationStatus) (*entity.InternshipApplication, error) {
	if !status.IsValid() {
		return nil, domainerrors.NewValidationError([]domainerrors.FieldError{
			{Field: "status", Message: "Status must be Pending, Approved or Rejected"},
		})
	}

	app, err := srv.applications.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrInternshipApplicationNotFound) {
			return nil, domainerrors.NewNotFoundError("Internship application")
		}

		return nil, errors.Wrap(err, "failed to update internship application status")
	}

	srv.logger.Info("Internship application status updated", "applicationID", id, "status", status)

	return app, nil
}

// DeleteApplication removes the application and best-effort deletes its
// stored resume.
func (srv *internshipService) DeleteApplication(ctx context.Context, id uuid.UUID) error {
	app, err := srv.GetApplication(ctx, id)
	if err != nil {
		return err
	}

	if err := srv.applications.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrInternshipApplicationNotFound) {
			return domainerrors.NewNotFoundError("Internship application")
		}

		return errors.Wrap(err, "failed to delete internship application")
	}

	if app.ResumePath != "" {
		if err := srv.files.Delete(ctx, app.ResumePath); err != nil {
			srv.logger.Warn("Failed to delete resume for removed application", "key", app.ResumePath, "error", err)
		}
	}

	srv.logger.Info("Internship application deleted", "applicationID", id)

	return nil
}

package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"institute/internal/domain/entity"
	domainerrors "institute/internal/domain/errors"
	"institute/internal/domain/repository"
	"institute/internal/pagination"
	"institute/internal/usecase"
)

// projectService implements the ProjectUsecase interface.
type projectService struct {
	projects repository.ProjectRepository
	logger   *slog.Logger
}

// NewProjectService is the constructor for projectService.
func NewProjectService(projects repository.ProjectRepository, logger *slog.Logger) usecase.ProjectUsecase {
	return &projectService{
		projects: projects,
		logger:   logger,
	}
}

func (srv *projectService) List(ctx context.Context, filter repository.ProjectFilter, opts pagination.Options) ([]*entity.Project, *pagination.Pagination, error) {
	projects, total, err := srv.projects.List(ctx, filter, repository.ListOptions{
		Offset: opts.Offset(),
		Limit:  opts.PageSize,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list projects")
	}

	return projects, pagination.New(total, opts), nil
}

func (srv *projectService) Get(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	project, err := srv.projects.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, domainerrors.NewNotFoundError("Project")
		}

		return nil, errors.Wrap(err, "failed to load project")
	}

	return project, nil
}

func (srv *projectService) Create(ctx context.Context, input usecase.CreateProjectInput) (*entity.Project, error) {
	project := &entity.Project{
		Title:       input.Title,
		Category:    input.Category,
		Description: input.Description,
		TechStack:   input.TechStack,
		Image:       input.Image,
	}

	if err := srv.projects.Create(ctx, project); err != nil {
		return nil, err
	}

	srv.logger.Info("Project created", "projectID", project.ID, "title", project.Title)

	return project, nil
}

func (srv *projectService) Update(ctx context.Context, id uuid.UUID, input usecase.UpdateProjectInput) (*entity.Project, error) {
	project, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		project.Title = *input.Title
	}
	if input.Category != nil {
		project.Category = *input.Category
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.TechStack != nil {
		project.TechStack = input.TechStack
	}
	if input.Image != nil {
		project.Image = *input.Image
	}

	if err := srv.projects.Update(ctx, project); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, domainerrors.NewNotFoundError("Project")
		}

		return nil, err
	}

	return project, nil
}

func (srv *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.projects.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return domainerrors.NewNotFoundError("Project")
		}

		return errors.Wrap(err, "failed to delete project")
	}

	srv.logger.Info("Project deleted", "projectID", id)

	return nil
}

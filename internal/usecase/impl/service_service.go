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

// serviceService implements the ServiceUsecase interface.
type serviceService struct {
	services repository.ServiceRepository
	logger   *slog.Logger
}

// NewServiceService is the constructor for serviceService.
func NewServiceService(services repository.ServiceRepository, logger *slog.Logger) usecase.ServiceUsecase {
	return &serviceService{
		services: services,
		logger:   logger,
	}
}

func (srv *serviceService) List(ctx context.Context, opts pagination.Options) ([]*entity.Service, *pagination.Pagination, error) {
	services, total, err := srv.services.List(ctx, repository.ListOptions{
		Offset: opts.Offset(),
		Limit:  opts.PageSize,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list services")
	}

	return services, pagination.New(total, opts), nil
}

func (srv *serviceService) Get(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	svc, err := srv.services.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, domainerrors.NewNotFoundError("Service")
		}

		return nil, errors.Wrap(err, "failed to load service")
	}

	return svc, nil
}

func (srv *serviceService) Create(ctx context.Context, input usecase.CreateServiceInput) (*entity.Service, error) {
	svc := &entity.Service{
		Title:       input.Title,
		Description: input.Description,
		Features:    input.Features,
		Icon:        input.Icon,
		Image:       input.Image,
	}

	if err := srv.services.Create(ctx, svc); err != nil {
		return nil, err
	}

	srv.logger.Info("Service created", "serviceID", svc.ID, "title", svc.Title)

	return svc, nil
}

func (srv *serviceService) Update(ctx context.Context, id uuid.UUID, input usecase.UpdateServiceInput) (*entity.Service, error) {
	svc, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		svc.Title = *input.Title
	}
	if input.Description != nil {
		svc.Description = *input.Description
	}
	if input.Features != nil {
		svc.Features = input.Features
	}
	if input.Icon != nil {
		svc.Icon = *input.Icon
	}
	if input.Image != nil {
		svc.Image = *input.Image
	}

	if err := srv.services.Update(ctx, svc); err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, domainerrors.NewNotFoundError("Service")
		}

		return nil, err
	}

	return svc, nil
}

func (srv *serviceService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.services.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return domainerrors.NewNotFoundError("Service")
		}

		return errors.Wrap(err, "failed to delete service")
	}

	srv.logger.Info("Service deleted", "serviceID", id)

	return nil
}

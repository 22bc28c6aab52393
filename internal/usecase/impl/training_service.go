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

// trainingService implements the TrainingUsecase interface.
type trainingService struct {
	trainings repository.TrainingRepository
	logger    *slog.Logger
}

// NewTrainingService is the constructor for trainingService.
func NewTrainingService(trainings repository.TrainingRepository, logger *slog.Logger) usecase.TrainingUsecase {
	return &trainingService{
		trainings: trainings,
		logger:    logger,
	}
}

func (srv *trainingService) List(ctx context.Context, filter repository.TrainingFilter, opts pagination.Options) ([]*entity.Training, *pagination.Pagination, error) {
	programs, total, err := srv.trainings.List(ctx, filter, repository.ListOptions{
		Offset: opts.Offset(),
		Limit:  opts.PageSize,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list training programs")
	}

	return programs, pagination.New(total, opts), nil
}

func (srv *trainingService) Get(ctx context.Context, id uuid.UUID) (*entity.Training, error) {
	program, err := srv.trainings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTrainingNotFound) {
			return nil, domainerrors.NewNotFoundError("Training program")
		}

		return nil, errors.Wrap(err, "failed to load training program")
	}

	return program, nil
}

func (srv *trainingService) Create(ctx context.Context, input usecase.CreateTrainingInput) (*entity.Training, error) {
	program := &entity.Training{
		Title:       input.Title,
		Category:    input.Category,
		Description: input.Description,
		Features:    input.Features,
		Icon:        input.Icon,
	}

	if err := srv.trainings.Create(ctx, program); err != nil {
		return nil, err
	}

	srv.logger.Info("Training program created", "trainingID", program.ID, "title", program.Title)

	return program, nil
}

func (srv *trainingService) Update(ctx context.Context, id uuid.UUID, input usecase.UpdateTrainingInput) (*entity.Training, error) {
	program, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		program.Title = *input.Title
	}
	if input.Category != nil {
		program.Category = *input.Category
	}
	if input.Description != nil {
		program.Description = *input.Description
	}
	if input.Features != nil {
		program.Features = input.Features
	}
	if input.Icon != nil {
		program.Icon = *input.Icon
	}

	if err := srv.trainings.Update(ctx, program); err != nil {
		if errors.Is(err, repository.ErrTrainingNotFound) {
			return nil, domainerrors.NewNotFoundError("Training program")
		}

		return nil, err
	}

	return program, nil
}

func (srv *trainingService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.trainings.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTrainingNotFound) {
			return domainerrors.NewNotFoundError("Training program")
		}

		return errors.Wrap(err, "failed to delete training program")
	}

	srv.logger.Info("Training program deleted", "trainingID", id)

	return nil
}

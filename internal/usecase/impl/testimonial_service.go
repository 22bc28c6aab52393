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

// testimonialService implements the TestimonialUsecase interface.
type testimonialService struct {
	testimonials repository.TestimonialRepository
	logger       *slog.Logger
}

// NewTestimonialService is the constructor for testimonialService.
func NewTestimonialService(testimonials repository.TestimonialRepository, logger *slog.Logger) usecase.TestimonialUsecase {
	return &testimonialService{
		testimonials: testimonials,
		logger:       logger,
	}
}

func (srv *testimonialService) List(ctx context.Context, opts pagination.Options) ([]*entity.Testimonial, *pagination.Pagination, error) {
	testimonials, total, err := srv.testimonials.List(ctx, repository.ListOptions{
		Offset: opts.Offset(),
		Limit:  opts.PageSize,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list testimonials")
	}

	return testimonials, pagination.New(total, opts), nil
}

func (srv *testimonialService) Get(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error) {
	t, err := srv.testimonials.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTestimonialNotFound) {
			return nil, domainerrors.NewNotFoundError("Testimonial")
		}

		return nil, errors.Wrap(err, "failed to load testimonial")
	}

	return t, nil
}

func (srv *testimonialService) Create(ctx context.Context, input usecase.CreateTestimonialInput) (*entity.Testimonial, error) {
	t := &entity.Testimonial{
		Name:   input.Name,
		Title:  input.Title,
		Quote:  input.Quote,
		Avatar: input.Avatar,
	}

	if err := srv.testimonials.Create(ctx, t); err != nil {
		return nil, err
	}

	srv.logger.Info("Testimonial created", "testimonialID", t.ID, "name", t.Name)

	return t, nil
}

func (srv *testimonialService) Update(ctx context.Context, id uuid.UUID, input usecase.UpdateTestimonialInput) (*entity.Testimonial, error) {
	t, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		t.Name = *input.Name
	}
	if input.Title != nil {
		t.Title = *input.Title
	}
	if input.Quote != nil {
		t.Quote = *input.Quote
	}
	if input.Avatar != nil {
		t.Avatar = *input.Avatar
	}

	if err := srv.testimonials.Update(ctx, t); err != nil {
		if errors.Is(err, repository.ErrTestimonialNotFound) {
			return nil, domainerrors.NewNotFoundError("Testimonial")
		}

		return nil, err
	}

	return t, nil
}

func (srv *testimonialService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.testimonials.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTestimonialNotFound) {
			return domainerrors.NewNotFoundError("Testimonial")
		}

		return errors.Wrap(err, "failed to delete testimonial")
	}

	srv.logger.Info("Testimonial deleted", "testimonialID", id)

	return nil
}

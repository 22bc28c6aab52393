package usecase

import (
	"context"

	"github.com/google/uuid"

	"institute/internal/domain/entity"
	"institute/internal/domain/repository"
	"institute/internal/pagination"
)

// --- Employees ---

// CreateEmployeeInput defines the data required to add a team member.
type CreateEmployeeInput struct {
	Name    string
	Role    string
	Summary string
	Skills  []string
	Image   string
}

// UpdateEmployeeInput carries partial edits; nil fields are left untouched.
type UpdateEmployeeInput struct {
	Name    *string
	Role    *string
	Summary *string
	Skills  []string
	Image   *string
}

// EmployeeUsecase defines the team page operations.
type EmployeeUsecase interface {
	List(ctx context.Context, opts pagination.Options) ([]*entity.Employee, *pagination.Pagination, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Employee, error)
	Create(ctx context.Context, input CreateEmployeeInput) (*entity.Employee, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateEmployeeInput) (*entity.Employee, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// --- Projects ---

// CreateProjectInput defines the data required to add a portfolio project.
type CreateProjectInput struct {
	Title       string
	Category    entity.ProjectCategory
	Description string
	TechStack   []string
	Image       string
}

// UpdateProjectInput carries partial edits; nil fields are left untouched.
type UpdateProjectInput struct {
	Title       *string
	Category    *entity.ProjectCategory
	Description *string
	TechStack   []string
	Image       *string
}

// ProjectUsecase defines the portfolio operations.
type ProjectUsecase interface {
	List(ctx context.Context, filter repository.ProjectFilter, opts pagination.Options) ([]*entity.Project, *pagination.Pagination, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Project, error)
	Create(ctx context.Context, input CreateProjectInput) (*entity.Project, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProjectInput) (*entity.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// --- Services ---

// CreateServiceInput defines the data required to add a service offering.
type CreateServiceInput struct {
	Title       string
	Description string
	Features    []string
	Icon        string
	Image       string
}

// UpdateServiceInput carries partial edits; nil fields are left untouched.
type UpdateServiceInput struct {
	Title       *string
	Description *string
	Features    []string
	Icon        *string
	Image       *string
}

// ServiceUsecase defines the services page operations.
type ServiceUsecase interface {
	List(ctx context.Context, opts pagination.Options) ([]*entity.Service, *pagination.Pagination, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Service, error)
	Create(ctx context.Context, input CreateServiceInput) (*entity.Service, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateServiceInput) (*entity.Service, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// --- Testimonials ---

// CreateTestimonialInput defines the data required to add a testimonial.
type CreateTestimonialInput struct {
	Name   string
	Title  string
	Quote  string
	Avatar string
}

// UpdateTestimonialInput carries partial edits; nil fields are left untouched.
type UpdateTestimonialInput struct {
	Name   *string
	Title  *string
	Quote  *string
	Avatar *string
}

// TestimonialUsecase defines the testimonial operations.
type TestimonialUsecase interface {
	List(ctx context.Context, opts pagination.Options) ([]*entity.Testimonial, *pagination.Pagination, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error)
	Create(ctx context.Context, input CreateTestimonialInput) (*entity.Testimonial, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateTestimonialInput) (*entity.Testimonial, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// --- Trainings ---

// CreateTrainingInput defines the data required to add a training program.
type CreateTrainingInput struct {
	Title       string
	Category    entity.TrainingCategory
	Description string
	Features    []string
	Icon        string
}

// UpdateTrainingInput carries partial edits; nil fields are left untouched.
type UpdateTrainingInput struct {
	Title       *string
	Category    *entity.TrainingCategory
	Description *string
	Features    []string
	Icon        *string
}

// TrainingUsecase defines the training program operations.
type TrainingUsecase interface {
	List(ctx context.Context, filter repository.TrainingFilter, opts pagination.Options) ([]*entity.Training, *pagination.Pagination, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Training, error)
	Create(ctx context.Context, input CreateTrainingInput) (*entity.Training, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateTrainingInput) (*entity.Training, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

package usecase

import (
	"context"

	"github.com/google/uuid"

	"institute/internal/domain/entity"
	"institute/internal/pagination"
)

// CreateInternshipInput defines the data required to publish an internship track.
type CreateInternshipInput struct {
	Title       string
	Duration    string
	Mode        entity.InternshipMode
	Skills      []string
	Description string
	Image       string
}

// UpdateInternshipInput carries partial edits; nil fields are left untouched.
type UpdateInternshipInput struct {
	Title       *string
	Duration    *string
	Mode        *entity.InternshipMode
	Skills      []string
	Description *string
	Image       *string
}

// ApplyInternshipInput defines a student's submission against a track.
// StudentID is attached when the request carried a valid token.
type ApplyInternshipInput struct {
	Name      string
	Email     string
	Phone     string
	Message   string
	Resume    *ResumeUpload
	StudentID *uuid.UUID
}

// InternshipUsecase defines internship track and application operations.
type InternshipUsecase interface {
	List(ctx context.Context, opts pagination.Options) ([]*entity.Internship, *pagination.Pagination, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Internship, error)
	Create(ctx context.Context, input CreateInternshipInput) (*entity.Internship, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInternshipInput) (*entity.Internship, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Apply submits an application against a track, storing the resume under
	// the internship-resume prefix. The track title is captured as the
	// application's course.
	Apply(ctx context.Context, internshipID uuid.UUID, input ApplyInternshipInput) (*entity.InternshipApplication, error)

	ListApplications(ctx context.Context, opts pagination.Options) ([]*entity.InternshipApplication, *pagination.Pagination, error)
	GetApplication(ctx context.Context, id uuid.UUID) (*entity.InternshipApplication, error)
	UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status entity.ApplicationStatus) (*entity.InternshipApplication, error)
	DeleteApplication(ctx context.Context, id uuid.UUID) error
}

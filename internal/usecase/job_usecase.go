package usecase

import (
	"context"
	"io"

	"github.com/google/uuid"

	"institute/internal/domain/entity"
	"institute/internal/pagination"
)

// CreateJobInput defines the data required to post a job opening.
type CreateJobInput struct {
	Title       string
	Department  string
	Type        entity.JobType
	Location    entity.JobLocation
	Description string
}

// UpdateJobInput carries partial edits; nil fields are left untouched.
type UpdateJobInput struct {
	Title       *string
	Department  *string
	Type        *entity.JobType
	Location    *entity.JobLocation
	Description *string
}

// ResumeUpload carries an uploaded resume stream plus its original filename.
type ResumeUpload struct {
	Filename string
	Content  io.Reader
}

// ApplyJobInput defines a candidate's submission against an opening.
// UserID is attached when the request carried a valid token.
type ApplyJobInput struct {
	Name        string
	Email       string
	Phone       string
	CoverLetter string
	Resume      *ResumeUpload
	UserID      *uuid.UUID
}

// JobUsecase defines job opening and job application operations.
type JobUsecase interface {
	List(ctx context.Context, opts pagination.Options) ([]*entity.Job, *pagination.Pagination, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Job, error)
	Create(ctx context.Context, input CreateJobInput) (*entity.Job, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateJobInput) (*entity.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Apply submits an application against an opening, storing the resume
	// under the job-resume prefix.
	Apply(ctx context.Context, jobID uuid.UUID, input ApplyJobInput) (*entity.JobApplication, error)

	ListApplications(ctx context.Context, opts pagination.Options) ([]*entity.JobApplication, *pagination.Pagination, error)
	GetApplication(ctx context.Context, id uuid.UUID) (*entity.JobApplication, error)
	UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status entity.ApplicationStatus) (*entity.JobApplication, error)
	DeleteApplication(ctx context.Context, id uuid.UUID) error
}

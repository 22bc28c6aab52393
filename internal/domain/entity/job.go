package entity

import (
	"time"

	"github.com/google/uuid"
)

// JobType enumerates the employment types a job opening can have.
type JobType string

const (
	JobTypeFullTime JobType = "Full-time"
	JobTypePartTime JobType = "Part-time"
	JobTypeContract JobType = "Contract"
)

// IsValid checks if the JobType is a valid value.
func (t JobType) IsValid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract:
		return true
	default:
		return false
	}
}

// JobLocation enumerates where a job is performed.
type JobLocation string

const (
	JobLocationRemote JobLocation = "Remote"
	JobLocationOnSite JobLocation = "On-site"
	JobLocationHybrid JobLocation = "Hybrid"
)

// IsValid checks if the JobLocation is a valid value.
func (l JobLocation) IsValid() bool {
	switch l {
	case JobLocationRemote, JobLocationOnSite, JobLocationHybrid:
		return true
	default:
		return false
	}
}

// Job represents an open position listed on the careers page.
type Job struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Department  string      `json:"department"`
	Type        JobType     `json:"type"`
	Location    JobLocation `json:"location"`
	Description string      `json:"description,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// JobApplication is a candidate's submission against a job opening.
// JobTitle is denormalized so admin listings don't need a join.
type JobApplication struct {
	ID          uuid.UUID         `json:"id"`
	JobID       uuid.UUID         `json:"jobId"`
	UserID      *uuid.UUID        `json:"userId,omitempty"`
	JobTitle    string            `json:"jobTitle"`
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	ResumeName  string            `json:"resumeName"`
	ResumePath  string            `json:"resumePath"`
	CoverLetter string            `json:"coverLetter,omitempty"`
	Status      ApplicationStatus `json:"status"`
	Date        time.Time         `json:"date"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

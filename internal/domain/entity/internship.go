package entity

import (
	"time"

	"github.com/google/uuid"
)

// InternshipMode enumerates how an internship track is delivered.
type InternshipMode string

const (
	InternshipModeOnline  InternshipMode = "Online"
	InternshipModeOffline InternshipMode = "Offline"
	InternshipModeHybrid  InternshipMode = "Hybrid"
)

// IsValid checks if the InternshipMode is a valid value.
func (m InternshipMode) IsValid() bool {
	switch m {
	case InternshipModeOnline, InternshipModeOffline, InternshipModeHybrid:
		return true
	default:
		return false
	}
}

// Internship represents an internship track students can apply to.
type Internship struct {
	ID          uuid.UUID      `json:"id"`
	Title       string         `json:"title"`
	Duration    string         `json:"duration"`
	Mode        InternshipMode `json:"mode"`
	Skills      []string       `json:"skills"`
	Description string         `json:"description"`
	Image       string         `json:"image"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// InternshipApplication is a student's submission against an internship track.
// Course carries the track title at submission time.
type InternshipApplication struct {
	ID           uuid.UUID         `json:"id"`
	InternshipID uuid.UUID         `json:"internshipId"`
	StudentID    *uuid.UUID        `json:"studentId,omitempty"`
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	Phone        string            `json:"phone"`
	Course       string            `json:"course"`
	ResumeName   string            `json:"resumeName"`
	ResumePath   string            `json:"resumePath"`
	Message      string            `json:"message"`
	Status       ApplicationStatus `json:"status"`
	Date         time.Time         `json:"date"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

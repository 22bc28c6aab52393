package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProjectCategory enumerates the portfolio categories a project can belong to.
type ProjectCategory string

const (
	ProjectCategoryAIML        ProjectCategory = "AI/ML"
	ProjectCategoryWeb         ProjectCategory = "Web"
	ProjectCategoryVLSI        ProjectCategory = "VLSI"
	ProjectCategoryIoT         ProjectCategory = "IoT"
	ProjectCategoryDataScience ProjectCategory = "Data Science"
)

// IsValid checks if the ProjectCategory is a valid value.
func (c ProjectCategory) IsValid() bool {
	switch c {
	case ProjectCategoryAIML, ProjectCategoryWeb, ProjectCategoryVLSI,
		ProjectCategoryIoT, ProjectCategoryDataScience:
		return true
	default:
		return false
	}
}

// Project represents a portfolio project shown on the public site.
type Project struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Category    ProjectCategory `json:"category"`
	Description string          `json:"description"`
	TechStack   []string        `json:"techStack"`
	Image       string          `json:"image"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

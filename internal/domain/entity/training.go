package entity

import (
	"time"

	"github.com/google/uuid"
)

// TrainingCategory enumerates the audiences a training program targets.
type TrainingCategory string

const (
	TrainingCategoryInstitutional TrainingCategory = "Institutional"
	TrainingCategoryCorporate     TrainingCategory = "Corporate"
	TrainingCategoryOther         TrainingCategory = "Other"
)

// IsValid checks if the TrainingCategory is a valid value.
func (c TrainingCategory) IsValid() bool {
	switch c {
	case TrainingCategoryInstitutional, TrainingCategoryCorporate, TrainingCategoryOther:
		return true
	default:
		return false
	}
}

// Training represents a training program offered by the institute.
type Training struct {
	ID          uuid.UUID        `json:"id"`
	Title       string           `json:"title"`
	Category    TrainingCategory `json:"category"`
	Description string           `json:"description"`
	Features    []string         `json:"features"`
	Icon        string           `json:"icon,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

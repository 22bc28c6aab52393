package entity

import (
	"time"

	"github.com/google/uuid"
)

// Employee represents a team member shown on the public team page.
type Employee struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Summary   string    `json:"summary"`
	Skills    []string  `json:"skills"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Testimonial represents a client or student quote shown on the public site.
type Testimonial struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Quote     string    `json:"quote"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

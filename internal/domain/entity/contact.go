package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContactStatus tracks the handling state of a contact message.
type ContactStatus string

const (
	ContactStatusNew     ContactStatus = "New"
	ContactStatusRead    ContactStatus = "Read"
	ContactStatusReplied ContactStatus = "Replied"
)

// IsValid checks if the ContactStatus is a valid value.
func (s ContactStatus) IsValid() bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied:
		return true
	default:
		return false
	}
}

// Contact represents a message submitted through the public contact form.
type Contact struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Mobile    string        `json:"mobile,omitempty"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Status    ContactStatus `json:"status"`
	Date      time.Time     `json:"date"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

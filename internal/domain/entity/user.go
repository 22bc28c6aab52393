// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity entity, representing a person able to authenticate.
// PasswordDigest is never serialized outward; repositories only load it when
// explicitly asked for a credential check.
type User struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"` // Stored lowercased; unique across all users.
	PasswordDigest   string    `json:"-"`
	Phone            string    `json:"phone,omitempty"`
	Role             Role      `json:"role"`
	EnrolledPrograms []string  `json:"enrolledPrograms"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Sanitized returns a copy of the user safe to serialize in responses.
// The password digest is already hidden from JSON, but handing out a copy
// without it keeps the digest from leaking through logs or later mutation.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	clean := *u
	clean.PasswordDigest = ""

	return &clean
}

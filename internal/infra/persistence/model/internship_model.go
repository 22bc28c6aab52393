package model

import (
	"time"

	"github.com/google/uuid"
)

// InternshipModel mirrors the 'internships' table.
type InternshipModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Duration    string    `gorm:"type:varchar(100)"`
	Mode        string    `gorm:"type:varchar(20);not null"`
	Skills      []string  `gorm:"type:jsonb;serializer:json"`
	Description string    `gorm:"type:text"`
	Image       string    `gorm:"type:varchar(512)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Applications []InternshipApplicationModel `gorm:"foreignKey:InternshipID"`
}

// TableName explicitly sets the table name for GORM.
func (InternshipModel) TableName() string {
	return "internships"
}

// InternshipApplicationModel mirrors the 'internship_applications' table.
// Course carries the track title at submission time.
type InternshipApplicationModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	InternshipID uuid.UUID  `gorm:"type:uuid;not null;index"`
	StudentID    *uuid.UUID `gorm:"type:uuid;index"`
	Name         string     `gorm:"type:varchar(100);not null"`
	Email        string     `gorm:"type:varchar(255);not null"`
	Phone        string     `gorm:"type:varchar(30)"`
	Course       string     `gorm:"type:varchar(255)"`
	ResumeName   string     `gorm:"type:varchar(255)"`
	ResumePath   string     `gorm:"type:varchar(512)"`
	Message      string     `gorm:"type:text"`
	Status       string     `gorm:"type:varchar(20);not null;index"`
	Date         time.Time  `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (InternshipApplicationModel) TableName() string {
	return "internship_applications"
}

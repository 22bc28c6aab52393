package model

import (
	"time"

	"github.com/google/uuid"
)

// JobModel mirrors the 'jobs' table.
type JobModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Department  string    `gorm:"type:varchar(100);not null"`
	Type        string    `gorm:"type:varchar(30);not null"`
	Location    string    `gorm:"type:varchar(30);not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Applications []JobApplicationModel `gorm:"foreignKey:JobID"`
}

// TableName explicitly sets the table name for GORM.
func (JobModel) TableName() string {
	return "jobs"
}

// JobApplicationModel mirrors the 'job_applications' table. JobTitle is
// denormalized from jobs.title at submission time.
type JobApplicationModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	JobID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID      *uuid.UUID `gorm:"type:uuid;index"`
	JobTitle    string     `gorm:"type:varchar(255);not null"`
	Name        string     `gorm:"type:varchar(100);not null"`
	Email       string     `gorm:"type:varchar(255);not null"`
	Phone       string     `gorm:"type:varchar(30)"`
	ResumeName  string     `gorm:"type:varchar(255)"`
	ResumePath  string     `gorm:"type:varchar(512)"`
	CoverLetter string     `gorm:"type:text"`
	Status      string     `gorm:"type:varchar(20);not null;index"`
	Date        time.Time  `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (JobApplicationModel) TableName() string {
	return "job_applications"
}

package service

import (
	"context"
	"io"
)

// UploadKind names the destination an uploaded file belongs to. Each route
// states its kind explicitly; the store maps it to a key prefix. Nothing is
// ever inferred from the request path.
type UploadKind string

const (
	UploadBlogImage        UploadKind = "blog-image"
	UploadEmployeeImage    UploadKind = "employee-image"
	UploadProjectImage     UploadKind = "project-image"
	UploadTestimonialImage UploadKind = "testimonial-image"
	UploadInternshipResume UploadKind = "internship-resume"
	UploadJobResume        UploadKind = "job-resume"
)

// IsValid checks if the UploadKind is a known destination.
func (k UploadKind) IsValid() bool {
	switch k {
	case UploadBlogImage, UploadEmployeeImage, UploadProjectImage,
		UploadTestimonialImage, UploadInternshipResume, UploadJobResume:
		return true
	default:
		return false
	}
}

// FileStore defines the interface for storing uploaded files.
// Implementations return the stored key, which callers persist and later pass
// back for deletion.
type FileStore interface {
	// Save writes the file under the kind's prefix with a uniquified name and
	// returns the stored key.
	Save(ctx context.Context, kind UploadKind, filename string, r io.Reader) (string, error)

	// Delete removes a previously stored file by key.
	Delete(ctx context.Context, key string) error
}

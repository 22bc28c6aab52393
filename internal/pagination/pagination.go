// Package pagination normalizes page/pageSize query parameters and shapes list
// results into the uniform envelope shared by every list endpoint. Everything
// here is pure; no I/O.
package pagination

import "strconv"

const (
	// DefaultPageSize is used when the client sends no pageSize.
	DefaultPageSize = 10
	// MaxPageSize caps pageSize regardless of what the client asks for.
	MaxPageSize = 100
)

// Options is a normalized page request.
type Options struct {
	Page     int
	PageSize int
}

// Pagination is the metadata block attached to paginated responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// Parse normalizes raw page/pageSize query values. Missing or non-numeric
// inputs fall back to defaults; out-of-range values are clamped. List
// endpoints never reject on bad pagination input.
func Parse(page, pageSize string) Options {
	p := atoiOr(page, 1)
	if p < 1 {
		p = 1
	}

	size := atoiOr(pageSize, DefaultPageSize)
	if size < 1 {
		size = 1
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	return Options{Page: p, PageSize: size}
}

// Offset is the number of records to skip for the underlying query.
func (o Options) Offset() int {
	return (o.Page - 1) * o.PageSize
}

// New builds the pagination metadata for a page of results.
// TotalPages is 0 when total is 0, not 1.
func New(total int64, opts Options) *Pagination {
	size := int64(opts.PageSize)
	totalPages := (total + size - 1) / size

	return &Pagination{
		Page:       opts.Page,
		PageSize:   opts.PageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

func atoiOr(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}

	return n
}

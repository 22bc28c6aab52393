package repository

import (
	"context"

	"institute/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrEmployeeNotFound is returned when an employee is not found.
var ErrEmployeeNotFound = errors.New("employee not found")

// EmployeeRepository defines the interface for employee persistence.
type EmployeeRepository interface {
	// List retrieves a page of employees, newest first, plus the total count.
	List(ctx context.Context, opts ListOptions) ([]*entity.Employee, int64, error)

	// FindByID retrieves a single employee by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error)

	// Create persists a new employee.
	Create(ctx context.Context, emp *entity.Employee) error

	// Update modifies an existing employee.
	Update(ctx context.Context, emp *entity.Employee) error

	// Delete removes an employee by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

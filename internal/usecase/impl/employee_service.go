package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"institute/internal/domain/entity"
	domainerrors "institute/internal/domain/errors"
	"institute/internal/domain/repository"
	"institute/internal/pagination"
	"institute/internal/usecase"
)

// employeeService implements the EmployeeUsecase interface.
type employeeService struct {
	employees repository.EmployeeRepository
	logger    *slog.Logger
}

// NewEmployeeService is the constructor for employeeService.
func NewEmployeeService(employees repository.EmployeeRepository, logger *slog.Logger) usecase.EmployeeUsecase {
	return &employeeService{
		employees: employees,
		logger:    logger,
	}
}

func (srv *employeeService) List(ctx context.Context, opts pagination.Options) ([]*entity.Employee, *pagination.Pagination, error) {
	employees, total, err := srv.employees.List(ctx, repository.ListOptions{
		Offset: opts.Offset(),
		Limit:  opts.PageSize,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list employees")
	}

	return employees, pagination.New(total, opts), nil
}

func (srv *employeeService) Get(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	emp, err := srv.employees.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return nil, domainerrors.NewNotFoundError("Employee")
		}

		return nil, errors.Wrap(err, "failed to load employee")
	}

	return emp, nil
}

func (srv *employeeService) Create(ctx context.Context, input usecase.CreateEmployeeInput) (*entity.Employee, error) {
	emp := &entity.Employee{
		Name:    input.Name,
		Role:    input.Role,
		Summary: input.Summary,
		Skills:  input.Skills,
		Image:   input.Image,
	}

	if err := srv.employees.Create(ctx, emp); err != nil {
		return nil, err
	}

	srv.logger.Info("Employee created", "employeeID", emp.ID, "name", emp.Name)

	return emp, nil
}

func (srv *employeeService) Update(ctx context.Context, id uuid.UUID, input usecase.UpdateEmployeeInput) (*entity.Employee, error) {
	emp, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		emp.Name = *input.Name
	}
	if input.Role != nil {
		emp.Role = *input.Role
	}
	if input.Summary != nil {
		emp.Summary = *input.Summary
	}
	if input.Skills != nil {
		emp.Skills = input.Skills
	}
	if input.Image != nil {
		emp.Image = *input.Image
	}

	if err := srv.employees.Update(ctx, emp); err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return nil, domainerrors.NewNotFoundError("Employee")
		}

		return nil, err
	}

	return emp, nil
}

func (srv *employeeService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.employees.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return domainerrors.NewNotFoundError("Employee")
		}

		return errors.Wrap(err, "failed to delete employee")
	}

	srv.logger.Info("Employee deleted", "employeeID", id)

	return nil
}

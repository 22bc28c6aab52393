package postgres

import (
	"context"

	"institute/internal/domain/entity"
	domainerrors "institute/internal/domain/errors"
	"institute/internal/domain/repository"
	"institute/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// employeeRepository implements the repository.EmployeeRepository interface.
type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository is the constructor for employeeRepository.
func NewEmployeeRepository(db *gorm.DB) repository.EmployeeRepository {
	return &employeeRepository{
		db: db,
	}
}

// List retrieves a page of employees, newest first, plus the total count.
func (repo *employeeRepository) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Employee, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.EmployeeModel{}).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count employees")
	}

	var empModels []*model.EmployeeModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(opts.Offset).
		Limit(opts.Limit).
		Find(&empModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list employees")
	}

	employees := make([]*entity.Employee, 0, len(empModels))
	for _, empM := range empModels {
		employees = append(employees, toEmployeeDomain(empM))
	}

	return employees, total, nil
}

// FindByID retrieves a single employee by their unique ID.
func (repo *employeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	var empM model.EmployeeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&empM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEmployeeNotFound
		}

		return nil, errors.Wrap(err, "failed to find employee by ID")
	}

	return toEmployeeDomain(&empM), nil
}

// Create persists a new employee.
func (repo *employeeRepository) Create(ctx context.Context, emp *entity.Employee) error {
	empM := fromEmployeeDomain(emp)

	if err := repo.db.WithContext(ctx).Create(empM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create employee")
	}

	emp.ID = empM.ID
	emp.CreatedAt = empM.CreatedAt
	emp.UpdatedAt = empM.UpdatedAt

	return nil
}

// Update modifies an existing employee.
func (repo *employeeRepository) Update(ctx context.Context, emp *entity.Employee) error {
	empM := fromEmployeeDomain(emp)

	result := repo.db.WithContext(ctx).
		Model(&model.EmployeeModel{}).
		Where("id = ?", empM.ID).
		Select("name", "role", "summary", "skills", "image").
		Updates(empM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update employee")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEmployeeNotFound
	}

	return nil
}

// Delete removes an employee by ID.
func (repo *employeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.EmployeeModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete employee")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEmployeeNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toEmployeeDomain(data *model.EmployeeModel) *entity.Employee {
	if data == nil {
		return nil
	}

	return &entity.Employee{
		ID:        data.ID,
		Name:      data.Name,
		Role:      data.Role,
		Summary:   data.Summary,
		Skills:    data.Skills,
		Image:     data.Image,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromEmployeeDomain(data *entity.Employee) *model.EmployeeModel {
	if data == nil {
		return nil
	}

	return &model.EmployeeModel{
		ID:        data.ID,
		Name:      data.Name,
		Role:      data.Role,
		Summary:   data.Summary,
		Skills:    data.Skills,
		Image:     data.Image,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

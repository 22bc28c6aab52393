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

// contactRepository implements the repository.ContactRepository interface.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{
		db: db,
	}
}

// List retrieves a page of messages, newest first, plus the total count.
func (repo *contactRepository) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Contact, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ContactModel{}).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count contact messages")
	}

	var contactModels []*model.ContactModel
	if err := repo.db.WithContext(ctx).
		Order("date DESC").
		Offset(opts.Offset).
		Limit(opts.Limit).
		Find(&contactModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list contact messages")
	}

	messages := make([]*entity.Contact, 0, len(contactModels))
	for _, contactM := range contactModels {
		messages = append(messages, toContactDomain(contactM))
	}

	return messages, total, nil
}

// FindByID retrieves a single message by its unique ID.
func (repo *contactRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	var contactM model.ContactModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&contactM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to find contact message by ID")
	}

	return toContactDomain(&contactM), nil
}

// Create persists a new message.
func (repo *contactRepository) Create(ctx context.Context, msg *entity.Contact) error {
	contactM := fromContactDomain(msg)

	if err := repo.db.WithContext(ctx).Create(contactM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create contact message")
	}

	msg.ID = contactM.ID
	msg.CreatedAt = contactM.CreatedAt
	msg.UpdatedAt = contactM.UpdatedAt

	return nil
}

// UpdateStatus moves a message to a new handling status and returns the updated row.
func (repo *contactRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ContactStatus) (*entity.Contact, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ContactModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update contact message status")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrContactNotFound
	}

	return repo.FindByID(ctx, id)
}

// Delete removes a message by ID.
func (repo *contactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ContactModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete contact message")
	}

	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toContactDomain(data *model.ContactModel) *entity.Contact {
	if data == nil {
		return nil
	}

	return &entity.Contact{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Mobile:    data.Mobile,
		Subject:   data.Subject,
		Message:   data.Message,
		Status:    entity.ContactStatus(data.Status),
		Date:      data.Date,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromContactDomain(data *entity.Contact) *model.ContactModel {
	if data == nil {
		return nil
	}

	return &model.ContactModel{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Mobile:    data.Mobile,
		Subject:   data.Subject,
		Message:   data.Message,
		Status:    string(data.Status),
		Date:      data.Date,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

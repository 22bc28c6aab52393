package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"institute/internal/domain/entity"
	domainerrors "institute/internal/domain/errors"
	"institute/internal/domain/repository"
	"institute/internal/pagination"
	"institute/internal/usecase"
)

// contactService implements the ContactUsecase interface.
type contactService struct {
	contacts repository.ContactRepository
	logger   *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(contacts repository.ContactRepository, logger *slog.Logger) usecase.ContactUsecase {
	return &contactService{
		contacts: contacts,
		logger:   logger,
	}
}

// Submit records a new message with status New.
func (srv *contactService) Submit(ctx context.Context, input usecase.SubmitContactInput) (*entity.Contact, error) {
	msg := &entity.Contact{
		Name:    input.Name,
		Email:   normalizeEmail(input.Email),
		Mobile:  input.Mobile,
		Subject: input.Subject,
		Message: input.Message,
		Status:  entity.ContactStatusNew,
		Date:    time.Now(),
	}

	if err := srv.contacts.Create(ctx, msg); err != nil {
		return nil, err
	}

	srv.logger.Info("Contact message received", "contactID", msg.ID, "subject", msg.Subject)

	return msg, nil
}

func (srv *contactService) List(ctx context.Context, opts pagination.Options) ([]*entity.Contact, *pagination.Pagination, error) {
	messages, total, err := srv.contacts.List(ctx, repository.ListOptions{
		Offset: opts.Offset(),
		Limit:  opts.PageSize,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list contact messages")
	}

	return messages, pagination.New(total, opts), nil
}

func (srv *contactService) Get(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	msg, err := srv.contacts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return nil, domainerrors.NewNotFoundError("Contact message")
		}

		return nil, errors.Wrap(err, "failed to load contact message")
	}

	return msg, nil
}

func (srv *contactService) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ContactStatus) (*entity.Contact, error) {
	if !status.IsValid() {
		return nil, domainerrors.NewValidationError([]domainerrors.FieldError{
			{Field: "status", Message: "Status must be New, Read or Replied"},
		})
	}

	msg, err := srv.contacts.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return nil, domainerrors.NewNotFoundError("Contact message")
		}

		return nil, errors.Wrap(err, "failed to update contact message status")
	}

	srv.logger.Info("Contact message status updated", "contactID", id, "status", status)

	return msg, nil
}

func (srv *contactService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.contacts.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return domainerrors.NewNotFoundError("Contact message")
		}

		return errors.Wrap(err, "failed to delete contact message")
	}

	srv.logger.Info("Contact message deleted", "contactID", id)

	return nil
}

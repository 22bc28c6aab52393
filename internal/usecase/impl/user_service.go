package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"institute/internal/domain/entity"
	domainerrors "institute/internal/domain/errors"
	"institute/internal/domain/repository"
	"institute/internal/pagination"
	"institute/internal/usecase"
)

// userService implements the admin-only UserUsecase interface.
type userService struct {
	users  repository.UserRepository
	logger *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(users repository.UserRepository, logger *slog.Logger) usecase.UserUsecase {
	return &userService{
		users:  users,
		logger: logger,
	}
}

// List retrieves a page of users plus the pagination envelope.
func (srv *userService) List(ctx context.Context, opts pagination.Options) ([]*entity.User, *pagination.Pagination, error) {
	users, total, err := srv.users.List(ctx, repository.ListOptions{
		Offset: opts.Offset(),
		Limit:  opts.PageSize,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list users")
	}

	for i, user := range users {
		users[i] = user.Sanitized()
	}

	return users, pagination.New(total, opts), nil
}

// Get loads a single user by ID.
func (srv *userService) Get(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.NewNotFoundError("User")
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	return user.Sanitized(), nil
}

// Update applies admin edits. Role and password are not part of the input
// type, so they cannot be set through this path either.
func (srv *userService) Update(ctx context.Context, id uuid.UUID, input usecase.AdminUpdateUserInput) (*entity.User, error) {
	user, err := srv.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.NewNotFoundError("User")
		}

		return nil, errors.Wrap(err, "failed to load user for update")
	}

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		user.Email = normalizeEmail(*input.Email)
	}
	if input.Phone != nil {
		user.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.EnrolledPrograms != nil {
		user.EnrolledPrograms = input.EnrolledPrograms
	}

	if err := srv.users.Update(ctx, user); err != nil {
		return nil, err
	}

	srv.logger.Info("User updated by admin", "userID", user.ID)

	return user.Sanitized(), nil
}

// Delete removes an account.
func (srv *userService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.users.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.NewNotFoundError("User")
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.logger.Info("User deleted by admin", "userID", id)

	return nil
}

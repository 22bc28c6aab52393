// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"institute/config"
	"institute/internal/domain/entity"
	domainerrors "institute/internal/domain/errors"
	"institute/internal/domain/repository"
	"institute/internal/domain/service"
	"institute/internal/usecase"
)

// Email domains reserved for administrator accounts. Student self-registration
// under these domains is rejected; overridable through config.
var defaultAdminEmailDomains = []string{"@imtda.com", "@admin.imtda.com"}

// authService implements the AuthUsecase interface.
type authService struct {
	users             repository.UserRepository
	hasher            service.PasswordHasher
	tokens            service.TokenService
	adminEmailDomains []string
	logger            *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	users repository.UserRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuthUsecase {
	domains := defaultAdminEmailDomains
	if cfg != nil && cfg.Auth != nil && len(cfg.Auth.AdminEmailDomains) > 0 {
		domains = cfg.Auth.AdminEmailDomains
	}

	return &authService{
		users:             users,
		hasher:            hasher,
		tokens:            tokens,
		adminEmailDomains: domains,
		logger:            logger,
	}
}

// Login authenticates credentials against a single role pool.
func (srv *authService) Login(ctx context.Context, pool entity.Role, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	user, err := srv.users.FindByEmail(ctx, email, true)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up user for login")
	}

	// A single decision combining existence, pool membership and password
	// match. Every failure leaves the same trace outward so a caller cannot
	// tell which part failed.
	credentialsValid := err == nil &&
		user.Role == pool &&
		srv.hasher.Check(input.Password, user.PasswordDigest)
	if !credentialsValid {
		srv.logger.Info("Login rejected", "email", email, "pool", pool.String())

		return nil, domainerrors.ErrInvalidCredentials
	}

	pair, err := srv.tokens.IssuePair(identityOf(user))
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue tokens on login")
	}

	srv.logger.Info("Login succeeded", "userID", user.ID, "pool", pool.String())

	return &usecase.AuthOutput{User: user.Sanitized(), Tokens: pair}, nil
}

// Register creates an account in the given pool.
func (srv *authService) Register(ctx context.Context, pool entity.Role, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if !pool.IsValid() {
		return nil, errors.Errorf("unknown registration pool: %s", pool)
	}

	email := normalizeEmail(input.Email)
	srv.logger.Info("Starting registration", "email", email, "pool", pool.String())

	if pool == entity.RoleStudent && srv.isReservedAdminEmail(email) {
		return nil, domainerrors.NewValidationError([]domainerrors.FieldError{
			{Field: "email", Message: "This email domain is reserved for administrator accounts"},
		})
	}

	if _, err := srv.users.FindByEmail(ctx, email, false); err == nil {
		return nil, domainerrors.ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing email")
	}

	digest, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	user := &entity.User{
		Name:             strings.TrimSpace(input.Name),
		Email:            email,
		PasswordDigest:   digest,
		Phone:            strings.TrimSpace(input.Phone),
		Role:             pool,
		EnrolledPrograms: []string{},
	}

	// The unique index still backs this up; a concurrent duplicate surfaces
	// as ErrEmailTaken from the repository.
	if err := srv.users.Create(ctx, user); err != nil {
		return nil, err
	}

	pair, err := srv.tokens.IssuePair(identityOf(user))
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue tokens on registration")
	}

	srv.logger.Info("Registration succeeded", "userID", user.ID, "pool", pool.String())

	return &usecase.AuthOutput{User: user.Sanitized(), Tokens: pair}, nil
}

// RegisterAdmin creates an admin account, open only for the very first admin
// or to callers who already hold the admin role.
func (srv *authService) RegisterAdmin(ctx context.Context, input usecase.RegisterInput, callerID *uuid.UUID) (*usecase.AuthOutput, error) {
	adminCount, err := srv.users.CountByRole(ctx, entity.RoleAdmin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count admins")
	}

	if adminCount > 0 {
		if callerID == nil {
			return nil, domainerrors.ErrUnauthorized
		}

		caller, err := srv.users.FindByID(ctx, *callerID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil, domainerrors.ErrUnauthorized
			}

			return nil, errors.Wrap(err, "failed to load admin caller")
		}
		if caller.Role != entity.RoleAdmin {
			return nil, domainerrors.ErrForbidden
		}
	}

	return srv.Register(ctx, entity.RoleAdmin, input)
}

// CurrentUser loads the authenticated user's account.
func (srv *authService) CurrentUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.NewNotFoundError("User")
		}

		return nil, errors.Wrap(err, "failed to load current user")
	}

	return user.Sanitized(), nil
}

// UpdateProfile applies the allowed profile changes. Role and password are not
// part of the input type, so they can never be changed through this path.
func (srv *authService) UpdateProfile(ctx context.Context, id uuid.UUID, input usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.NewNotFoundError("User")
		}

		return nil, errors.Wrap(err, "failed to load user for profile update")
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

	srv.logger.Info("Profile updated", "userID", user.ID)

	return user.Sanitized(), nil
}

// RefreshAccessToken mints a fresh token pair for an already authenticated
// user.
func (srv *authService) RefreshAccessToken(ctx context.Context, id uuid.UUID) (*service.TokenPair, error) {
	user, err := srv.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.NewNotFoundError("User")
		}

		return nil, errors.Wrap(err, "failed to load user for token refresh")
	}

	pair, err := srv.tokens.IssuePair(identityOf(user))
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue refreshed tokens")
	}

	return pair, nil
}

func (srv *authService) isReservedAdminEmail(email string) bool {
	for _, domain := range srv.adminEmailDomains {
		if strings.HasSuffix(email, strings.ToLower(domain)) {
			return true
		}
	}

	return false
}

func identityOf(user *entity.User) service.Identity {
	return service.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

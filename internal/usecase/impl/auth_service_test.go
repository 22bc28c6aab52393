package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"institute/internal/domain/entity"
	domainerrors "institute/internal/domain/errors"
	"institute/internal/domain/repository"
	"institute/internal/usecase"
)

func newAuthService(repo *mockUserRepo) usecase.AuthUsecase {
	return NewAuthService(repo, fakeHasher{}, fakeTokenService{}, nil, testLogger())
}

func studentUser(email string) *entity.User {
	return &entity.User{
		ID:             uuid.New(),
		Name:           "Asha",
		Email:          email,
		PasswordDigest: "digest:correct-password",
		Role:           entity.RoleStudent,
	}
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	repo := new(mockUserRepo)
	user := studentUser("asha@example.com")
	repo.On("FindByEmail", mock.Anything, "asha@example.com", true).Return(user, nil)

	out, err := newAuthService(repo).Login(t.Context(), entity.RoleStudent, usecase.LoginInput{
		Email:    " Asha@Example.COM ",
		Password: "correct-password",
	})

	require.NoError(t, err)
	assert.Equal(t, user.ID, out.User.ID)
	assert.Empty(t, out.User.PasswordDigest)
	assert.NotEmpty(t, out.Tokens.AccessToken)
	repo.AssertExpectations(t)
}

func TestLogin_UniformFailures(t *testing.T) {
	t.Parallel()

	// Unknown email, wrong password and wrong pool must be outwardly
	// indistinguishable.
	tests := []struct {
		name     string
		setup    func(repo *mockUserRepo)
		pool     entity.Role
		password string
	}{
		{
			name: "unknown email",
			setup: func(repo *mockUserRepo) {
				repo.On("FindByEmail", mock.Anything, "ghost@example.com", true).
					Return(nil, repository.ErrUserNotFound)
			},
			pool:     entity.RoleStudent,
			password: "whatever",
		},
		{
			name: "wrong password",
			setup: func(repo *mockUserRepo) {
				repo.On("FindByEmail", mock.Anything, "ghost@example.com", true).
					Return(studentUser("ghost@example.com"), nil)
			},
			pool:     entity.RoleStudent,
			password: "not-the-password",
		},
		{
			name: "wrong pool",
			setup: func(repo *mockUserRepo) {
				repo.On("FindByEmail", mock.Anything, "ghost@example.com", true).
					Return(studentUser("ghost@example.com"), nil)
			},
			pool:     entity.RoleAdmin,
			password: "correct-password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := new(mockUserRepo)
			tt.setup(repo)

			_, err := newAuthService(repo).Login(t.Context(), tt.pool, usecase.LoginInput{
				Email:    "ghost@example.com",
				Password: tt.password,
			})

			require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "Invalid email or password", appErr.Message())
		})
	}
}

func TestRegister_StudentRejectsReservedDomain(t *testing.T) {
	t.Parallel()

	repo := new(mockUserRepo)

	_, err := newAuthService(repo).Register(t.Context(), entity.RoleStudent, usecase.RegisterInput{
		Name:     "Mallory",
		Email:    "Mallory@IMTDA.com",
		Password: "pw",
	})

	require.ErrorIs(t, err, domainerrors.ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_ConflictIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	repo := new(mockUserRepo)
	// The lookup itself is case-folded, so a differently-cased duplicate
	// still collides.
	repo.On("FindByEmail", mock.Anything, "asha@example.com", false).
		Return(studentUser("asha@example.com"), nil)

	_, err := newAuthService(repo).Register(t.Context(), entity.RoleStudent, usecase.RegisterInput{
		Name:     "Asha",
		Email:    "ASHA@Example.com",
		Password: "pw",
	})

	require.ErrorIs(t, err, domainerrors.ErrEmailTaken)
	repo.AssertExpectations(t)
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	repo := new(mockUserRepo)
	repo.On("FindByEmail", mock.Anything, "new@example.com", false).
		Return(nil, repository.ErrUserNotFound)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "new@example.com" &&
			u.Role == entity.RoleStudent &&
			u.PasswordDigest == "digest:pw"
	})).Return(nil)

	out, err := newAuthService(repo).Register(t.Context(), entity.RoleStudent, usecase.RegisterInput{
		Name:     "New Student",
		Email:    "New@Example.com",
		Password: "pw",
	})

	require.NoError(t, err)
	assert.Empty(t, out.User.PasswordDigest)
	assert.Equal(t, entity.RoleStudent, out.User.Role)
	assert.NotEmpty(t, out.Tokens.RefreshToken)
	repo.AssertExpectations(t)
}

func TestRegisterAdmin_BootstrapMatrix(t *testing.T) {
	t.Parallel()

	adminID := uuid.New()
	studentID := uuid.New()

	tests := []struct {
		name       string
		adminCount int64
		callerID   *uuid.UUID
		setup      func(repo *mockUserRepo)
		wantErr    error
	}{
		{
			name:       "zero admins with no identity passes",
			adminCount: 0,
			callerID:   nil,
		},
		{
			name:       "existing admin with no identity rejected",
			adminCount: 1,
			callerID:   nil,
			wantErr:    domainerrors.ErrUnauthorized,
		},
		{
			name:       "existing admin with student identity rejected",
			adminCount: 1,
			callerID:   &studentID,
			setup: func(repo *mockUserRepo) {
				repo.On("FindByID", mock.Anything, studentID).
					Return(&entity.User{ID: studentID, Role: entity.RoleStudent}, nil)
			},
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name:       "existing admin with admin identity passes",
			adminCount: 1,
			callerID:   &adminID,
			setup: func(repo *mockUserRepo) {
				repo.On("FindByID", mock.Anything, adminID).
					Return(&entity.User{ID: adminID, Role: entity.RoleAdmin}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := new(mockUserRepo)
			repo.On("CountByRole", mock.Anything, entity.RoleAdmin).Return(tt.adminCount, nil)
			if tt.setup != nil {
				tt.setup(repo)
			}
			if tt.wantErr == nil {
				repo.On("FindByEmail", mock.Anything, "boss@imtda.com", false).
					Return(nil, repository.ErrUserNotFound)
				repo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
					return u.Role == entity.RoleAdmin
				})).Return(nil)
			}

			out, err := newAuthService(repo).RegisterAdmin(t.Context(), usecase.RegisterInput{
				Name:     "Boss",
				Email:    "boss@imtda.com",
				Password: "pw",
			}, tt.callerID)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, entity.RoleAdmin, out.User.Role)
		})
	}
}

func TestUpdateProfile_AppliesOnlyAllowedFields(t *testing.T) {
	t.Parallel()

	repo := new(mockUserRepo)
	user := studentUser("asha@example.com")
	repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		// Role untouched, new name applied, email folded.
		return u.Role == entity.RoleStudent &&
			u.Name == "Asha K" &&
			u.Email == "asha.k@example.com"
	})).Return(nil)

	name := "Asha K"
	email := "Asha.K@Example.com"
	updated, err := newAuthService(repo).UpdateProfile(t.Context(), user.ID, usecase.UpdateProfileInput{
		Name:  &name,
		Email: &email,
	})

	require.NoError(t, err)
	assert.Empty(t, updated.PasswordDigest)
	assert.Equal(t, entity.RoleStudent, updated.Role)
	repo.AssertExpectations(t)
}

func TestRefreshAccessToken(t *testing.T) {
	t.Parallel()

	repo := new(mockUserRepo)
	user := studentUser("asha@example.com")
	repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	pair, err := newAuthService(repo).RefreshAccessToken(t.Context(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "access:"+user.ID.String(), pair.AccessToken)

	// A deleted account cannot refresh; the response names the missing user
	// rather than falling back to an authentication failure.
	missing := new(mockUserRepo)
	missing.On("FindByID", mock.Anything, mock.Anything).Return(nil, repository.ErrUserNotFound)

	_, err = newAuthService(missing).RefreshAccessToken(t.Context(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.NotErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestCurrentUser_NotFound(t *testing.T) {
	t.Parallel()

	repo := new(mockUserRepo)
	repo.On("FindByID", mock.Anything, mock.Anything).Return(nil, repository.ErrUserNotFound)

	_, err := newAuthService(repo).CurrentUser(t.Context(), uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

// memUserRepo keeps users in a map so a registration can be replayed through
// a subsequent login.
type memUserRepo struct {
	byEmail map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: make(map[string]*entity.User)}
}

func (m *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, user := range m.byEmail {
		if user.ID == id {
			clone := *user

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (m *memUserRepo) FindByEmail(_ context.Context, email string, withDigest bool) (*entity.User, error) {
	user, ok := m.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	clone := *user
	if !withDigest {
		clone.PasswordDigest = ""
	}

	return &clone, nil
}

func (m *memUserRepo) CountByRole(_ context.Context, role entity.Role) (int64, error) {
	var n int64
	for _, user := range m.byEmail {
		if user.Role == role {
			n++
		}
	}

	return n, nil
}

func (m *memUserRepo) List(_ context.Context, _ repository.ListOptions) ([]*entity.User, int64, error) {
	return nil, 0, nil
}

func (m *memUserRepo) Create(_ context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	clone := *user
	m.byEmail[user.Email] = &clone

	return nil
}

func (m *memUserRepo) Update(_ context.Context, user *entity.User) error {
	clone := *user
	m.byEmail[user.Email] = &clone

	return nil
}

func (m *memUserRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}

func TestRegisterThenLogin_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(newMemUserRepo(), fakeHasher{}, fakeTokenService{}, nil, testLogger())

	registered, err := svc.Register(t.Context(), entity.RoleStudent, usecase.RegisterInput{
		Name:     "Asha",
		Email:    "Asha@Example.com",
		Password: "round-trip-pw",
	})
	require.NoError(t, err)

	out, err := svc.Login(t.Context(), entity.RoleStudent, usecase.LoginInput{
		Email:    "asha@example.com",
		Password: "round-trip-pw",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, out.User.ID)
	assert.Empty(t, out.User.PasswordDigest)

	// The admin pool must not accept the freshly created student account.
	_, err = svc.Login(t.Context(), entity.RoleAdmin, usecase.LoginInput{
		Email:    "asha@example.com",
		Password: "round-trip-pw",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

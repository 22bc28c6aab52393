package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"institute/internal/domain/entity"
	"institute/internal/domain/repository"
	"institute/internal/domain/service"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- user repository mock ---

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string, withDigest bool) (*entity.User, error) {
	args := m.Called(ctx, email, withDigest)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepo) CountByRole(ctx context.Context, role entity.Role) (int64, error) {
	args := m.Called(ctx, role)

	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context, opts repository.ListOptions) ([]*entity.User, int64, error) {
	args := m.Called(ctx, opts)
	if users := args.Get(0); users != nil {
		return users.([]*entity.User), args.Get(1).(int64), args.Error(2)
	}

	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *mockUserRepo) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// --- password hasher fake ---

// fakeHasher is a deterministic stand-in for the bcrypt hasher.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "digest:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return hash == "digest:"+password
}

// --- token service fake ---

// fakeTokenService mints predictable tokens keyed to the identity.
type fakeTokenService struct{}

func (fakeTokenService) IssueAccess(id service.Identity) (string, error) {
	return "access:" + id.UserID.String(), nil
}

func (fakeTokenService) IssueRefresh(id service.Identity) (string, error) {
	return "refresh:" + id.UserID.String(), nil
}

func (fakeTokenService) IssuePair(id service.Identity) (*service.TokenPair, error) {
	return &service.TokenPair{
		AccessToken:  "access:" + id.UserID.String(),
		RefreshToken: "refresh:" + id.UserID.String(),
		ExpiresAt:    time.Now().Add(15 * time.Minute).UnixMilli(),
	}, nil
}

func (fakeTokenService) Verify(token string) (*service.Claims, error) {
	if !strings.HasPrefix(token, "access:") {
		return nil, service.ErrTokenMalformed
	}

	return &service.Claims{}, nil
}

func (fakeTokenService) DecodeUnverified(_ string) (*service.Claims, error) {
	return &service.Claims{}, nil
}

// --- file store mock ---

type mockFileStore struct {
	mock.Mock
}

func (m *mockFileStore) Save(ctx context.Context, kind service.UploadKind, filename string, r io.Reader) (string, error) {
	args := m.Called(ctx, kind, filename, r)

	return args.String(0), args.Error(1)
}

func (m *mockFileStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)

	return args.Error(0)
}

// --- job repository mocks ---

type mockJobRepo struct {
	mock.Mock
}

func (m *mockJobRepo) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Job, int64, error) {
	args := m.Called(ctx, opts)
	if jobs := args.Get(0); jobs != nil {
		return jobs.([]*entity.Job), args.Get(1).(int64), args.Error(2)
	}

	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *mockJobRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	args := m.Called(ctx, id)
	if job := args.Get(0); job != nil {
		return job.(*entity.Job), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockJobRepo) Create(ctx context.Context, job *entity.Job) error {
	args := m.Called(ctx, job)

	return args.Error(0)
}

func (m *mockJobRepo) Update(ctx context.Context, job *entity.Job) error {
	args := m.Called(ctx, job)

	return args.Error(0)
}

func (m *mockJobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type mockJobApplicationRepo struct {
	mock.Mock
}

func (m *mockJobApplicationRepo) List(ctx context.Context, opts repository.ListOptions) ([]*entity.JobApplication, int64, error) {
	args := m.Called(ctx, opts)
	if apps := args.Get(0); apps != nil {
		return apps.([]*entity.JobApplication), args.Get(1).(int64), args.Error(2)
	}

	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *mockJobApplicationRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.JobApplication, error) {
	args := m.Called(ctx, id)
	if app := args.Get(0); app != nil {
		return app.(*entity.JobApplication), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockJobApplicationRepo) Create(ctx context.Context, app *entity.JobApplication) error {
	args := m.Called(ctx, app)

	return args.Error(0)
}

func (m *mockJobApplicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ApplicationStatus) (*entity.JobApplication, error) {
	args := m.Called(ctx, id, status)
	if app := args.Get(0); app != nil {
		return app.(*entity.JobApplication), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockJobApplicationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// --- contact repository mock ---

type mockContactRepo struct {
	mock.Mock
}

func (m *mockContactRepo) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Contact, int64, error) {
	args := m.Called(ctx, opts)
	if msgs := args.Get(0); msgs != nil {
		return msgs.([]*entity.Contact), args.Get(1).(int64), args.Error(2)
	}

	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *mockContactRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	args := m.Called(ctx, id)
	if msg := args.Get(0); msg != nil {
		return msg.(*entity.Contact), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockContactRepo) Create(ctx context.Context, msg *entity.Contact) error {
	args := m.Called(ctx, msg)

	return args.Error(0)
}

func (m *mockContactRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ContactStatus) (*entity.Contact, error) {
	args := m.Called(ctx, id, status)
	if msg := args.Get(0); msg != nil {
		return msg.(*entity.Contact), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockContactRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

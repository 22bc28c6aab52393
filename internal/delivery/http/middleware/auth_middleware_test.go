package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	delivctx "institute/internal/delivery/context"
	"institute/internal/domain/entity"
	domainerrors "institute/internal/domain/errors"
	"institute/internal/domain/repository"
	"institute/internal/domain/service"
	"institute/internal/errors"
)

// stubTokens verifies tokens by name: "expired" and "bad" map to the
// corresponding sentinels, anything present in claims verifies.
type stubTokens struct {
	claims map[string]*service.Claims
}

func (s *stubTokens) IssueAccess(service.Identity) (string, error)  { return "", nil }
func (s *stubTokens) IssueRefresh(service.Identity) (string, error) { return "", nil }

func (s *stubTokens) IssuePair(service.Identity) (*service.TokenPair, error) { return nil, nil }

func (s *stubTokens) DecodeUnverified(string) (*service.Claims, error) { return nil, nil }

func (s *stubTokens) Verify(token string) (*service.Claims, error) {
	switch token {
	case "expired":
		return nil, service.ErrTokenExpired
	case "bad":
		return nil, service.ErrTokenMalformed
	}
	if claims, ok := s.claims[token]; ok {
		return claims, nil
	}

	return nil, errors.New("verifier failure")
}

// stubUsers only answers CountByRole; the middleware touches nothing else.
type stubUsers struct {
	adminCount int64
}

func (s *stubUsers) FindByID(context.Context, uuid.UUID) (*entity.User, error) {
	return nil, repository.ErrUserNotFound
}

func (s *stubUsers) FindByEmail(context.Context, string, bool) (*entity.User, error) {
	return nil, repository.ErrUserNotFound
}

func (s *stubUsers) CountByRole(_ context.Context, role entity.Role) (int64, error) {
	if role == entity.RoleAdmin {
		return s.adminCount, nil
	}

	return 0, nil
}

func (s *stubUsers) List(context.Context, repository.ListOptions) ([]*entity.User, int64, error) {
	return nil, 0, nil
}

func (s *stubUsers) Create(context.Context, *entity.User) error { return nil }
func (s *stubUsers) Update(context.Context, *entity.User) error { return nil }
func (s *stubUsers) Delete(context.Context, uuid.UUID) error    { return nil }

func newTestMiddleware(adminCount int64) (*AuthMiddleware, *stubTokens) {
	tokens := &stubTokens{claims: map[string]*service.Claims{
		"admin-token": {
			UserID: uuid.New(),
			Email:  "boss@imtda.com",
			Role:   entity.RoleAdmin,
		},
		"student-token": {
			UserID: uuid.New(),
			Email:  "kid@example.com",
			Role:   entity.RoleStudent,
		},
	}}

	return NewAuthMiddleware(tokens, &stubUsers{adminCount: adminCount}), tokens
}

func newRequestContext(t *testing.T, authHeader string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}

	return e.NewContext(req, httptest.NewRecorder())
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthenticate_ErrorMessages(t *testing.T) {
	m, _ := newTestMiddleware(1)

	tests := []struct {
		name        string
		authHeader  string
		wantMessage string
	}{
		{name: "missing header", authHeader: "", wantMessage: "Authentication token required"},
		{name: "not a bearer token", authHeader: "Basic abc", wantMessage: "Authentication token required"},
		{name: "expired token", authHeader: "Bearer expired", wantMessage: "Token expired"},
		{name: "malformed token", authHeader: "Bearer bad", wantMessage: "Invalid token"},
		{name: "verifier failure", authHeader: "Bearer unknown", wantMessage: "Authentication failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newRequestContext(t, tt.authHeader)

			err := m.Authenticate(okHandler)(c)

			require.Error(t, err)
			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
			assert.Equal(t, tt.wantMessage, appErr.Message())
		})
	}
}

func TestAuthenticate_AttachesIdentity(t *testing.T) {
	m, tokens := newTestMiddleware(1)
	c := newRequestContext(t, "Bearer admin-token")

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	userID, ok := delivctx.UserID(c)
	require.True(t, ok)
	assert.Equal(t, tokens.claims["admin-token"].UserID, userID)
	role, ok := delivctx.UserRole(c)
	require.True(t, ok)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestOptionalAuthenticate_SwallowsFailures(t *testing.T) {
	m, _ := newTestMiddleware(1)

	for _, header := range []string{"", "Bearer expired", "Bearer bad", "Bearer unknown"} {
		c := newRequestContext(t, header)

		err := m.OptionalAuthenticate(okHandler)(c)

		require.NoError(t, err)
		_, ok := delivctx.UserID(c)
		assert.False(t, ok)
	}
}

func TestOptionalAuthenticate_AttachesValidIdentity(t *testing.T) {
	m, _ := newTestMiddleware(1)
	c := newRequestContext(t, "Bearer student-token")

	err := m.OptionalAuthenticate(okHandler)(c)

	require.NoError(t, err)
	role, ok := delivctx.UserRole(c)
	require.True(t, ok)
	assert.Equal(t, entity.RoleStudent, role)
}

func TestAllowRoles_Gating(t *testing.T) {
	m, _ := newTestMiddleware(1)

	tests := []struct {
		name     string
		token    string
		gate     echo.MiddlewareFunc
		wantCode int
	}{
		{name: "no identity is 401", token: "", gate: m.AllowRoles(entity.RoleAdmin), wantCode: http.StatusUnauthorized},
		{name: "wrong role is 403", token: "student-token", gate: m.AllowRoles(entity.RoleAdmin), wantCode: http.StatusForbidden},
		{name: "matching role passes", token: "admin-token", gate: m.AllowRoles(entity.RoleAdmin), wantCode: 0},
		{name: "any role passes RequireAuth", token: "student-token", gate: echo.MiddlewareFunc(func(next echo.HandlerFunc) echo.HandlerFunc { return m.RequireAuth(next) }), wantCode: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newRequestContext(t, "Bearer "+tt.token)
			if tt.token != "" {
				require.NoError(t, m.OptionalAuthenticate(okHandler)(c))
			}

			err := tt.gate(okHandler)(c)

			if tt.wantCode == 0 {
				require.NoError(t, err)

				return
			}

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantCode, appErr.HTTPCode())
		})
	}
}

func TestRequireAdminOrAllowFirst(t *testing.T) {
	tests := []struct {
		name       string
		adminCount int64
		token      string
		wantCode   int
	}{
		{name: "no identity passes while zero admins exist", adminCount: 0, token: "", wantCode: 0},
		{name: "student passes while zero admins exist", adminCount: 0, token: "student-token", wantCode: 0},
		{name: "admin always passes", adminCount: 3, token: "admin-token", wantCode: 0},
		{name: "no identity is 401 once an admin exists", adminCount: 1, token: "", wantCode: http.StatusUnauthorized},
		{name: "student is 403 once an admin exists", adminCount: 1, token: "student-token", wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestMiddleware(tt.adminCount)
			c := newRequestContext(t, "Bearer "+tt.token)
			if tt.token != "" {
				require.NoError(t, m.OptionalAuthenticate(okHandler)(c))
			}

			err := m.RequireAdminOrAllowFirst(okHandler)(c)

			if tt.wantCode == 0 {
				require.NoError(t, err)

				return
			}

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantCode, appErr.HTTPCode())
		})
	}
}

package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	delivctx "institute/internal/delivery/context"
	"institute/internal/delivery/http/validator"
	"institute/internal/domain/entity"
	domainerrors "institute/internal/domain/errors"
	"institute/internal/domain/service"
	"institute/internal/usecase"
)

// fakeAuthUsecase records the last call and returns canned outputs.
type fakeAuthUsecase struct {
	lastPool     entity.Role
	lastCallerID *uuid.UUID
	output       *usecase.AuthOutput
	err          error
}

func (f *fakeAuthUsecase) Login(_ context.Context, pool entity.Role, _ usecase.LoginInput) (*usecase.AuthOutput, error) {
	f.lastPool = pool

	return f.output, f.err
}

func (f *fakeAuthUsecase) Register(_ context.Context, pool entity.Role, _ usecase.RegisterInput) (*usecase.AuthOutput, error) {
	f.lastPool = pool

	return f.output, f.err
}

func (f *fakeAuthUsecase) RegisterAdmin(_ context.Context, _ usecase.RegisterInput, callerID *uuid.UUID) (*usecase.AuthOutput, error) {
	f.lastCallerID = callerID

	return f.output, f.err
}

func (f *fakeAuthUsecase) CurrentUser(context.Context, uuid.UUID) (*entity.User, error) {
	return f.output.User, f.err
}

func (f *fakeAuthUsecase) UpdateProfile(context.Context, uuid.UUID, usecase.UpdateProfileInput) (*entity.User, error) {
	return f.output.User, f.err
}

func (f *fakeAuthUsecase) RefreshAccessToken(context.Context, uuid.UUID) (*service.TokenPair, error) {
	return f.output.Tokens, f.err
}

func testOutput() *usecase.AuthOutput {
	return &usecase.AuthOutput{
		User: &entity.User{
			ID:    uuid.New(),
			Name:  "Asha",
			Email: "asha@example.com",
			Role:  entity.RoleStudent,
		},
		Tokens: &service.TokenPair{
			AccessToken:  "access",
			RefreshToken: "refresh",
			ExpiresAt:    1700000000000,
		},
	}
}

func newAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return NewAuthHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func jsonContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_UsesStudentPool(t *testing.T) {
	uc := &fakeAuthUsecase{output: testOutput()}
	h := newAuthHandler(uc)

	c, rec := jsonContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"asha@example.com","password":"secret123"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, entity.RoleStudent, uc.lastPool)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]any)
	assert.Equal(t, "access", data["accessToken"])
	assert.Equal(t, "refresh", data["refreshToken"])
	assert.NotContains(t, data["user"], "passwordDigest")
}

func TestAuthHandler_AdminLogin_UsesAdminPool(t *testing.T) {
	uc := &fakeAuthUsecase{output: testOutput()}
	h := newAuthHandler(uc)

	c, _ := jsonContext(t, http.MethodPost, "/api/auth/admin/login",
		`{"email":"boss@imtda.com","password":"secret123"}`)

	require.NoError(t, h.AdminLogin(c))
	assert.Equal(t, entity.RoleAdmin, uc.lastPool)
}

func TestAuthHandler_Login_ValidationFailure(t *testing.T) {
	h := newAuthHandler(&fakeAuthUsecase{output: testOutput()})

	c, _ := jsonContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"not-an-email","password":""}`)

	err := h.Login(c)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPCode())
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
}

func TestAuthHandler_Register_ShortPasswordRejected(t *testing.T) {
	h := newAuthHandler(&fakeAuthUsecase{output: testOutput()})

	c, _ := jsonContext(t, http.MethodPost, "/api/auth/register",
		`{"name":"Asha","email":"asha@example.com","password":"short"}`)

	err := h.Register(c)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
}

func TestAuthHandler_AdminRegister_ForwardsCallerIdentity(t *testing.T) {
	uc := &fakeAuthUsecase{output: testOutput()}
	h := newAuthHandler(uc)

	callerID := uuid.New()
	c, rec := jsonContext(t, http.MethodPost, "/api/auth/admin/register",
		`{"name":"Boss","email":"boss@imtda.com","password":"secret123"}`)
	delivctx.SetIdentity(c, &service.Claims{
		UserID: callerID,
		Email:  "boss@imtda.com",
		Role:   entity.RoleAdmin,
	})

	require.NoError(t, h.AdminRegister(c))
	require.NotNil(t, uc.lastCallerID)
	assert.Equal(t, callerID, *uc.lastCallerID)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAuthHandler_AdminRegister_AnonymousCallerIsNil(t *testing.T) {
	uc := &fakeAuthUsecase{output: testOutput()}
	h := newAuthHandler(uc)

	c, _ := jsonContext(t, http.MethodPost, "/api/auth/admin/register",
		`{"name":"Boss","email":"boss@imtda.com","password":"secret123"}`)

	require.NoError(t, h.AdminRegister(c))
	assert.Nil(t, uc.lastCallerID)
}

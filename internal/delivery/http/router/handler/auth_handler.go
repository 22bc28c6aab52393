package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	delivctx "institute/internal/delivery/context"
	"institute/internal/delivery/http/response"
	"institute/internal/domain/entity"
	domainerrors "institute/internal/domain/errors"
	"institute/internal/errors"
	"institute/internal/usecase"
)

// AuthHandler holds dependencies for authentication and account handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

// RegisterRequest represents the request body for account registration.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest represents the request body for profile edits.
// Role and password are not part of the surface; unknown fields are ignored.
type UpdateProfileRequest struct {
	Name             *string  `json:"name" validate:"omitempty,min=2,max=100"`
	Email            *string  `json:"email" validate:"omitempty,email"`
	Phone            *string  `json:"phone" validate:"omitempty,max=20"`
	EnrolledPrograms []string `json:"enrolledPrograms"`
}

// Login handles the student login request.
func (h *AuthHandler) Login(c echo.Context) error {
	return h.login(c, entity.RoleStudent)
}

// AdminLogin handles the administrator login request.
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	return h.login(c, entity.RoleAdmin)
}

func (h *AuthHandler) login(c echo.Context, pool entity.Role) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), pool, usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loginPayload(output), "Login successful")
}

// Register handles student self-registration.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), entity.RoleStudent, usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, loginPayload(output), "Registration successful")
}

// AdminRegister handles administrator registration. The route is gated by
// RequireAdminOrAllowFirst; the caller identity, when present, is forwarded
// for the usecase's own verification.
func (h *AuthHandler) AdminRegister(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	}

	output, err := h.uc.RegisterAdmin(c.Request().Context(), input, callerRef(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, loginPayload(output), "Admin registered successfully")
}

// Me returns the authenticated user's account.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := delivctx.UserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	user, err := h.uc.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// UpdateProfile applies the allowed self-service account edits.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	userID, ok := delivctx.UserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), userID, usecase.UpdateProfileInput{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		EnrolledPrograms: req.EnrolledPrograms,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated successfully")
}

// Refresh mints a fresh token pair for the authenticated user.
func (h *AuthHandler) Refresh(c echo.Context) error {
	userID, ok := delivctx.UserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	tokens, err := h.uc.RefreshAccessToken(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tokens, "Token refreshed successfully")
}

// Logout acknowledges a logout. Tokens are stateless; the client discards
// them and the server keeps no session to invalidate.
func (h *AuthHandler) Logout(c echo.Context) error {
	return response.Success(c, http.StatusOK, nil, "Successfully logged out")
}

// callerRef returns the authenticated user's ID when the request carried a
// verified identity, nil otherwise.
func callerRef(c echo.Context) *uuid.UUID {
	userID, ok := delivctx.UserID(c)
	if !ok {
		return nil
	}

	return &userID
}

// loginPayload shapes the user-plus-tokens body shared by login and
// registration responses.
func loginPayload(output *usecase.AuthOutput) map[string]any {
	return map[string]any{
		"user":         output.User,
		"accessToken":  output.Tokens.AccessToken,
		"refreshToken": output.Tokens.RefreshToken,
		"expiresAt":    output.Tokens.ExpiresAt,
	}
}

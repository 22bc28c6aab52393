package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"institute/internal/delivery/http/response"
	"institute/internal/errors"
	"institute/internal/usecase"
)

// EmployeeHandler holds dependencies for team page handlers.
type EmployeeHandler struct {
	uc     usecase.EmployeeUsecase
	logger *slog.Logger
}

// NewEmployeeHandler is the constructor for EmployeeHandler, injected by Fx.
func NewEmployeeHandler(uc usecase.EmployeeUsecase, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, logger: logger}
}

// CreateEmployeeRequest represents the request body for adding a team member.
type CreateEmployeeRequest struct {
	Name    string   `json:"name" validate:"required,max=100"`
	Role    string   `json:"role" validate:"required,max=100"`
	Summary string   `json:"summary" validate:"required"`
	Skills  []string `json:"skills"`
	Image   string   `json:"image"`
}

// UpdateEmployeeRequest represents the request body for editing a team member.
type UpdateEmployeeRequest struct {
	Name    *string  `json:"name" validate:"omitempty,max=100"`
	Role    *string  `json:"role" validate:"omitempty,max=100"`
	Summary *string  `json:"summary"`
	Skills  []string `json:"skills"`
	Image   *string  `json:"image"`
}

// List returns a page of team members.
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, page, err := h.uc.List(c.Request().Context(), pageOptions(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, employees, page)
}

// Get returns a single team member.
func (h *EmployeeHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	employee, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, employee, "")
}

// Create adds a team member.
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req CreateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid employee input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	employee, err := h.uc.Create(c.Request().Context(), usecase.CreateEmployeeInput{
		Name:    req.Name,
		Role:    req.Role,
		Summary: req.Summary,
		Skills:  req.Skills,
		Image:   req.Image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, employee, "Employee created successfully")
}

// Update applies partial edits to a team member.
func (h *EmployeeHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid employee input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	employee, err := h.uc.Update(c.Request().Context(), id, usecase.UpdateEmployeeInput{
		Name:    req.Name,
		Role:    req.Role,
		Summary: req.Summary,
		Skills:  req.Skills,
		Image:   req.Image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, employee, "Employee updated successfully")
}

// Delete removes a team member.
func (h *EmployeeHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Employee deleted successfully")
}

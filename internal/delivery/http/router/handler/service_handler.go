package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"institute/internal/delivery/http/response"
	"institute/internal/errors"
	"institute/internal/usecase"
)

// ServiceHandler holds dependencies for the services page handlers.
type ServiceHandler struct {
	uc     usecase.ServiceUsecase
	logger *slog.Logger
}

// NewServiceHandler is the constructor for ServiceHandler, injected by Fx.
func NewServiceHandler(uc usecase.ServiceUsecase, logger *slog.Logger) *ServiceHandler {
	return &ServiceHandler{uc: uc, logger: logger}
}

// CreateServiceRequest represents the request body for adding a service.
type CreateServiceRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description" validate:"required"`
	Features    []string `json:"features"`
	Icon        string   `json:"icon"`
	Image       string   `json:"image"`
}

// UpdateServiceRequest represents the request body for editing a service.
type UpdateServiceRequest struct {
	Title       *string  `json:"title" validate:"omitempty,max=200"`
	Description *string  `json:"description"`
	Features    []string `json:"features"`
	Icon        *string  `json:"icon"`
	Image       *string  `json:"image"`
}

// List returns a page of services.
func (h *ServiceHandler) List(c echo.Context) error {
	services, page, err := h.uc.List(c.Request().Context(), pageOptions(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, services, page)
}

// Get returns a single service.
func (h *ServiceHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	svc, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, svc, "")
}

// Create adds a service.
func (h *ServiceHandler) Create(c echo.Context) error {
	var req CreateServiceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid service input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	svc, err := h.uc.Create(c.Request().Context(), usecase.CreateServiceInput{
		Title:       req.Title,
		Description: req.Description,
		Features:    req.Features,
		Icon:        req.Icon,
		Image:       req.Image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, svc, "Service created successfully")
}

// Update applies partial edits to a service.
func (h *ServiceHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateServiceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid service input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	svc, err := h.uc.Update(c.Request().Context(), id, usecase.UpdateServiceInput{
		Title:       req.Title,
		Description: req.Description,
		Features:    req.Features,
		Icon:        req.Icon,
		Image:       req.Image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, svc, "Service updated successfully")
}

// Delete removes a service.
func (h *ServiceHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Service deleted successfully")
}

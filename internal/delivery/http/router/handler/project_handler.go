package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"institute/internal/delivery/http/response"
	"institute/internal/domain/entity"
	"institute/internal/domain/repository"
	"institute/internal/errors"
	"institute/internal/usecase"
)

// ProjectHandler holds dependencies for portfolio handlers.
type ProjectHandler struct {
	uc     usecase.ProjectUsecase
	logger *slog.Logger
}

// NewProjectHandler is the constructor for ProjectHandler, injected by Fx.
func NewProjectHandler(uc usecase.ProjectUsecase, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{uc: uc, logger: logger}
}

// CreateProjectRequest represents the request body for adding a project.
type CreateProjectRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Category    string   `json:"category" validate:"required"`
	Description string   `json:"description" validate:"required"`
	TechStack   []string `json:"techStack"`
	Image       string   `json:"image"`
}

// UpdateProjectRequest represents the request body for editing a project.
type UpdateProjectRequest struct {
	Title       *string  `json:"title" validate:"omitempty,max=200"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	TechStack   []string `json:"techStack"`
	Image       *string  `json:"image"`
}

// List returns a page of projects, optionally filtered by category.
func (h *ProjectHandler) List(c echo.Context) error {
	filter := repository.ProjectFilter{
		Category: entity.ProjectCategory(c.QueryParam("category")),
	}

	projects, page, err := h.uc.List(c.Request().Context(), filter, pageOptions(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, projects, page)
}

// Get returns a single project.
func (h *ProjectHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	project, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, project, "")
}

// Create adds a project.
func (h *ProjectHandler) Create(c echo.Context) error {
	var req CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid project input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category := entity.ProjectCategory(req.Category)
	if !category.IsValid() {
		return invalidField("category", "must be a known project category")
	}

	project, err := h.uc.Create(c.Request().Context(), usecase.CreateProjectInput{
		Title:       req.Title,
		Category:    category,
		Description: req.Description,
		TechStack:   req.TechStack,
		Image:       req.Image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, project, "Project created successfully")
}

// Update applies partial edits to a project.
func (h *ProjectHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateProjectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid project input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := usecase.UpdateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		TechStack:   req.TechStack,
		Image:       req.Image,
	}
	if req.Category != nil {
		category := entity.ProjectCategory(*req.Category)
		if !category.IsValid() {
			return invalidField("category", "must be a known project category")
		}
		input.Category = &category
	}

	project, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, project, "Project updated successfully")
}

// Delete removes a project.
func (h *ProjectHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Project deleted successfully")
}

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

// TrainingHandler holds dependencies for training program handlers.
type TrainingHandler struct {
	uc     usecase.TrainingUsecase
	logger *slog.Logger
}

// NewTrainingHandler is the constructor for TrainingHandler, injected by Fx.
func NewTrainingHandler(uc usecase.TrainingUsecase, logger *slog.Logger) *TrainingHandler {
	return &TrainingHandler{uc: uc, logger: logger}
}

// CreateTrainingRequest represents the request body for adding a program.
type CreateTrainingRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Category    string   `json:"category" validate:"required,oneof=Institutional Corporate Other"`
	Description string   `json:"description" validate:"required"`
	Features    []string `json:"features"`
	Icon        string   `json:"icon"`
}

// UpdateTrainingRequest represents the request body for editing a program.
type UpdateTrainingRequest struct {
	Title       *string  `json:"title" validate:"omitempty,max=200"`
	Category    *string  `json:"category" validate:"omitempty,oneof=Institutional Corporate Other"`
	Description *string  `json:"description"`
	Features    []string `json:"features"`
	Icon        *string  `json:"icon"`
}

// List returns a page of programs, optionally filtered by category.
func (h *TrainingHandler) List(c echo.Context) error {
	filter := repository.TrainingFilter{
		Category: entity.TrainingCategory(c.QueryParam("category")),
	}

	programs, page, err := h.uc.List(c.Request().Context(), filter, pageOptions(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, programs, page)
}

// Get returns a single program.
func (h *TrainingHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	program, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, program, "")
}

// Create adds a program.
func (h *TrainingHandler) Create(c echo.Context) error {
	var req CreateTrainingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid training input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	program, err := h.uc.Create(c.Request().Context(), usecase.CreateTrainingInput{
		Title:       req.Title,
		Category:    entity.TrainingCategory(req.Category),
		Description: req.Description,
		Features:    req.Features,
		Icon:        req.Icon,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, program, "Training created successfully")
}

// Update applies partial edits to a program.
func (h *TrainingHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateTrainingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid training input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := usecase.UpdateTrainingInput{
		Title:       req.Title,
		Description: req.Description,
		Features:    req.Features,
		Icon:        req.Icon,
	}
	if req.Category != nil {
		category := entity.TrainingCategory(*req.Category)
		input.Category = &category
	}

	program, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, program, "Training updated successfully")
}

// Delete removes a program.
func (h *TrainingHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Training deleted successfully")
}

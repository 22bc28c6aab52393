package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"institute/internal/delivery/http/response"
	"institute/internal/errors"
	"institute/internal/usecase"
)

// TestimonialHandler holds dependencies for testimonial handlers.
type TestimonialHandler struct {
	uc     usecase.TestimonialUsecase
	logger *slog.Logger
}

// NewTestimonialHandler is the constructor for TestimonialHandler, injected by Fx.
func NewTestimonialHandler(uc usecase.TestimonialUsecase, logger *slog.Logger) *TestimonialHandler {
	return &TestimonialHandler{uc: uc, logger: logger}
}

// CreateTestimonialRequest represents the request body for adding a testimonial.
type CreateTestimonialRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	Title  string `json:"title" validate:"required,max=200"`
	Quote  string `json:"quote" validate:"required"`
	Avatar string `json:"avatar"`
}

// UpdateTestimonialRequest represents the request body for editing a testimonial.
type UpdateTestimonialRequest struct {
	Name   *string `json:"name" validate:"omitempty,max=100"`
	Title  *string `json:"title" validate:"omitempty,max=200"`
	Quote  *string `json:"quote"`
	Avatar *string `json:"avatar"`
}

// List returns a page of testimonials.
func (h *TestimonialHandler) List(c echo.Context) error {
	testimonials, page, err := h.uc.List(c.Request().Context(), pageOptions(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, testimonials, page)
}

// Get returns a single testimonial.
func (h *TestimonialHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	testimonial, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, testimonial, "")
}

// Create adds a testimonial.
func (h *TestimonialHandler) Create(c echo.Context) error {
	var req CreateTestimonialRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid testimonial input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	testimonial, err := h.uc.Create(c.Request().Context(), usecase.CreateTestimonialInput{
		Name:   req.Name,
		Title:  req.Title,
		Quote:  req.Quote,
		Avatar: req.Avatar,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, testimonial, "Testimonial created successfully")
}

// Update applies partial edits to a testimonial.
func (h *TestimonialHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateTestimonialRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid testimonial input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	testimonial, err := h.uc.Update(c.Request().Context(), id, usecase.UpdateTestimonialInput{
		Name:   req.Name,
		Title:  req.Title,
		Quote:  req.Quote,
		Avatar: req.Avatar,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, testimonial, "Testimonial updated successfully")
}

// Delete removes a testimonial.
func (h *TestimonialHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Testimonial deleted successfully")
}

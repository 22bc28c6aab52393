package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"institute/internal/delivery/http/response"
	"institute/internal/domain/repository"
	"institute/internal/errors"
	"institute/internal/usecase"
)

// BlogHandler holds dependencies for blog content handlers.
type BlogHandler struct {
	uc     usecase.BlogUsecase
	logger *slog.Logger
}

// NewBlogHandler is the constructor for BlogHandler, injected by Fx.
func NewBlogHandler(uc usecase.BlogUsecase, logger *slog.Logger) *BlogHandler {
	return &BlogHandler{uc: uc, logger: logger}
}

// CreateBlogRequest represents the request body for publishing a post.
type CreateBlogRequest struct {
	Title    string     `json:"title" validate:"required,max=200"`
	Excerpt  string     `json:"excerpt" validate:"required,max=500"`
	Content  string     `json:"content" validate:"required"`
	Author   string     `json:"author" validate:"required,max=100"`
	Date     *time.Time `json:"date"`
	Category string     `json:"category" validate:"required,max=100"`
	Image    string     `json:"image"`
}

// UpdateBlogRequest represents the request body for editing a post.
type UpdateBlogRequest struct {
	Title    *string    `json:"title" validate:"omitempty,max=200"`
	Excerpt  *string    `json:"excerpt" validate:"omitempty,max=500"`
	Content  *string    `json:"content"`
	Author   *string    `json:"author" validate:"omitempty,max=100"`
	Date     *time.Time `json:"date"`
	Category *string    `json:"category" validate:"omitempty,max=100"`
	Image    *string    `json:"image"`
}

// List returns a page of posts, optionally filtered by category and a
// title/content search term.
func (h *BlogHandler) List(c echo.Context) error {
	filter := repository.BlogFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	}

	posts, page, err := h.uc.List(c.Request().Context(), filter, pageOptions(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, posts, page)
}

// Get returns a single post.
func (h *BlogHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	post, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post, "")
}

// Create publishes a new post.
func (h *BlogHandler) Create(c echo.Context) error {
	var req CreateBlogRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid blog input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.uc.Create(c.Request().Context(), usecase.CreateBlogInput{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Author:   req.Author,
		Date:     req.Date,
		Category: req.Category,
		Image:    req.Image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, post, "Blog post created successfully")
}

// Update applies partial edits to a post.
func (h *BlogHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateBlogRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid blog input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.uc.Update(c.Request().Context(), id, usecase.UpdateBlogInput{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Author:   req.Author,
		Date:     req.Date,
		Category: req.Category,
		Image:    req.Image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post, "Blog post updated successfully")
}

// Delete removes a post.
func (h *BlogHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Blog post deleted successfully")
}

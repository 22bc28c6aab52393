package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"institute/internal/delivery/http/response"
	"institute/internal/domain/entity"
	"institute/internal/errors"
	"institute/internal/usecase"
)

// ContactHandler holds dependencies for contact message handlers.
type ContactHandler struct {
	uc     usecase.ContactUsecase
	logger *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler, injected by Fx.
func NewContactHandler(uc usecase.ContactUsecase, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{uc: uc, logger: logger}
}

// SubmitContactRequest represents the public contact form body.
type SubmitContactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Mobile  string `json:"mobile" validate:"omitempty,max=20"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required"`
}

// UpdateContactStatusRequest represents the status patch body.
type UpdateContactStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=New Read Replied"`
}

// Submit records a public contact form message.
func (h *ContactHandler) Submit(c echo.Context) error {
	var req SubmitContactRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid contact input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	message, err := h.uc.Submit(c.Request().Context(), usecase.SubmitContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Mobile:  req.Mobile,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message, "Message sent successfully")
}

// List returns a page of messages for review.
func (h *ContactHandler) List(c echo.Context) error {
	messages, page, err := h.uc.List(c.Request().Context(), pageOptions(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, messages, page)
}

// Get returns a single message.
func (h *ContactHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	message, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, message, "")
}

// UpdateStatus moves a message through the handling states.
func (h *ContactHandler) UpdateStatus(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateContactStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	message, err := h.uc.UpdateStatus(c.Request().Context(), id, entity.ContactStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, message, "Contact status updated successfully")
}

// Delete removes a message.
func (h *ContactHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Contact deleted successfully")
}

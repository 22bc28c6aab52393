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

// InternshipHandler holds dependencies for internship track and application
// handlers.
type InternshipHandler struct {
	uc     usecase.InternshipUsecase
	logger *slog.Logger
}

// NewInternshipHandler is the constructor for InternshipHandler, injected by Fx.
func NewInternshipHandler(uc usecase.InternshipUsecase, logger *slog.Logger) *InternshipHandler {
	return &InternshipHandler{uc: uc, logger: logger}
}

// CreateInternshipRequest represents the request body for publishing a track.
type CreateInternshipRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Duration    string   `json:"duration" validate:"required,max=100"`
	Mode        string   `json:"mode" validate:"required,oneof=Online Offline Hybrid"`
	Skills      []string `json:"skills"`
	Description string   `json:"description" validate:"required"`
	Image       string   `json:"image"`
}

// UpdateInternshipRequest represents the request body for editing a track.
type UpdateInternshipRequest struct {
	Title       *string  `json:"title" validate:"omitempty,max=200"`
	Duration    *string  `json:"duration" validate:"omitempty,max=100"`
	Mode        *string  `json:"mode" validate:"omitempty,oneof=Online Offline Hybrid"`
	Skills      []string `json:"skills"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
}

// ApplyInternshipRequest represents the multipart form fields of an
// application. The resume arrives as the "resume" file part.
type ApplyInternshipRequest struct {
	Name    string `form:"name" validate:"required,max=100"`
	Email   string `form:"email" validate:"required,email"`
	Phone   string `form:"phone" validate:"required,max=20"`
	Message string `form:"message"`
}

// List returns a page of tracks.
func (h *InternshipHandler) List(c echo.Context) error {
	tracks, page, err := h.uc.List(c.Request().Context(), pageOptions(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, tracks, page)
}

// Get returns a single track.
func (h *InternshipHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	track, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, track, "")
}

// Create publishes a track.
func (h *InternshipHandler) Create(c echo.Context) error {
	var req CreateInternshipRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid internship input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	track, err := h.uc.Create(c.Request().Context(), usecase.CreateInternshipInput{
		Title:       req.Title,
		Duration:    req.Duration,
		Mode:        entity.InternshipMode(req.Mode),
		Skills:      req.Skills,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, track, "Internship created successfully")
}

// Update applies partial edits to a track.
func (h *InternshipHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateInternshipRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid internship input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := usecase.UpdateInternshipInput{
		Title:       req.Title,
		Duration:    req.Duration,
		Skills:      req.Skills,
		Description: req.Description,
		Image:       req.Image,
	}
	if req.Mode != nil {
		mode := entity.InternshipMode(*req.Mode)
		input.Mode = &mode
	}

	track, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, track, "Internship updated successfully")
}

// Delete removes a track.
func (h *InternshipHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Internship deleted successfully")
}

// Apply submits a student application with a multipart resume. A valid token
// on the request links the application to the student account; anonymous
// submissions pass through unlinked.
func (h *InternshipHandler) Apply(c echo.Context) error {
	internshipID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req ApplyInternshipRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid application input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	resume, release, err := resumePart(c)
	if err != nil {
		return err
	}
	defer release()

	application, err := h.uc.Apply(c.Request().Context(), internshipID, usecase.ApplyInternshipInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		Resume:    resume,
		StudentID: callerRef(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, application, "Application submitted successfully")
}

// ListApplications returns a page of applications for review.
func (h *InternshipHandler) ListApplications(c echo.Context) error {
	applications, page, err := h.uc.ListApplications(c.Request().Context(), pageOptions(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, applications, page)
}

// GetApplication returns a single application.
func (h *InternshipHandler) GetApplication(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	application, err := h.uc.GetApplication(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, application, "")
}

// UpdateApplicationStatus moves an application through the review states.
func (h *InternshipHandler) UpdateApplicationStatus(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateApplicationStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	application, err := h.uc.UpdateApplicationStatus(c.Request().Context(), id, entity.ApplicationStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, application, "Application status updated successfully")
}

// DeleteApplication removes an application along with its stored resume.
func (h *InternshipHandler) DeleteApplication(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteApplication(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Application deleted successfully")
}

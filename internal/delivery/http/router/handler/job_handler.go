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

// JobHandler holds dependencies for job opening and application handlers.
type JobHandler struct {
	uc     usecase.JobUsecase
	logger *slog.Logger
}

// NewJobHandler is the constructor for JobHandler, injected by Fx.
func NewJobHandler(uc usecase.JobUsecase, logger *slog.Logger) *JobHandler {
	return &JobHandler{uc: uc, logger: logger}
}

// CreateJobRequest represents the request body for posting an opening.
type CreateJobRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Department  string `json:"department" validate:"required,max=100"`
	Type        string `json:"type" validate:"required,oneof=Full-time Part-time Contract"`
	Location    string `json:"location" validate:"required,oneof=Remote On-site Hybrid"`
	Description string `json:"description"`
}

// UpdateJobRequest represents the request body for editing an opening.
type UpdateJobRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Department  *string `json:"department" validate:"omitempty,max=100"`
	Type        *string `json:"type" validate:"omitempty,oneof=Full-time Part-time Contract"`
	Location    *string `json:"location" validate:"omitempty,oneof=Remote On-site Hybrid"`
	Description *string `json:"description"`
}

// ApplyJobRequest represents the multipart form fields of an application.
// The resume arrives as the "resume" file part.
type ApplyJobRequest struct {
	Name        string `form:"name" validate:"required,max=100"`
	Email       string `form:"email" validate:"required,email"`
	Phone       string `form:"phone" validate:"required,max=20"`
	CoverLetter string `form:"coverLetter"`
}

// UpdateApplicationStatusRequest represents the status patch body used by
// both job and internship application reviews.
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Approved Rejected"`
}

// List returns a page of openings.
func (h *JobHandler) List(c echo.Context) error {
	jobs, page, err := h.uc.List(c.Request().Context(), pageOptions(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, jobs, page)
}

// Get returns a single opening.
func (h *JobHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	job, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, job, "")
}

// Create posts an opening.
func (h *JobHandler) Create(c echo.Context) error {
	var req CreateJobRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid job input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	job, err := h.uc.Create(c.Request().Context(), usecase.CreateJobInput{
		Title:       req.Title,
		Department:  req.Department,
		Type:        entity.JobType(req.Type),
		Location:    entity.JobLocation(req.Location),
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, job, "Job created successfully")
}

// Update applies partial edits to an opening.
func (h *JobHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateJobRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid job input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := usecase.UpdateJobInput{
		Title:       req.Title,
		Department:  req.Department,
		Description: req.Description,
	}
	if req.Type != nil {
		jobType := entity.JobType(*req.Type)
		input.Type = &jobType
	}
	if req.Location != nil {
		location := entity.JobLocation(*req.Location)
		input.Location = &location
	}

	job, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, job, "Job updated successfully")
}

// Delete removes an opening.
func (h *JobHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Job deleted successfully")
}

// Apply submits a candidate application with a multipart resume. A valid
// token on the request links the application to the account; anonymous
// submissions pass through unlinked.
func (h *JobHandler) Apply(c echo.Context) error {
	jobID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req ApplyJobRequest
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

	application, err := h.uc.Apply(c.Request().Context(), jobID, usecase.ApplyJobInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		CoverLetter: req.CoverLetter,
		Resume:      resume,
		UserID:      callerRef(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, application, "Application submitted successfully")
}

// ListApplications returns a page of applications for review.
func (h *JobHandler) ListApplications(c echo.Context) error {
	applications, page, err := h.uc.ListApplications(c.Request().Context(), pageOptions(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, applications, page)
}

// GetApplication returns a single application.
func (h *JobHandler) GetApplication(c echo.Context) error {
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
func (h *JobHandler) UpdateApplicationStatus(c echo.Context) error {
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
func (h *JobHandler) DeleteApplication(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteApplication(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Application deleted successfully")
}

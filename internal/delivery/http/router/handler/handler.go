// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"institute/internal/delivery/http/response"
	domainerrors "institute/internal/domain/errors"
	"institute/internal/errors"
	"institute/internal/pagination"
	"institute/internal/usecase"
)

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}

// parseID reads a UUID path parameter, failing with a 400 envelope on
// malformed input.
func parseID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.NewBaseError(http.StatusBadRequest, "INVALID_ID", "Invalid "+name+" parameter")
	}

	return id, nil
}

// invalidField builds the 422 envelope for a single bad field, used where a
// value passes struct tags but fails an enum check.
func invalidField(field, message string) error {
	return domainerrors.NewValidationError([]domainerrors.FieldError{
		{Field: field, Message: message},
	})
}

// pageOptions normalizes the page/pageSize query parameters.
// Bad input falls back to defaults; list endpoints never reject on it.
func pageOptions(c echo.Context) pagination.Options {
	return pagination.Parse(c.QueryParam("page"), c.QueryParam("pageSize"))
}

// resumePart opens the "resume" file of a multipart application form. A
// missing part yields a nil upload so the usecase can report the validation
// failure; the release func closes the opened stream.
func resumePart(c echo.Context) (*usecase.ResumeUpload, func(), error) {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return nil, func() {}, nil
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, func() {}, errors.Wrap(err, "failed to open resume upload")
	}

	upload := &usecase.ResumeUpload{
		Filename: fileHeader.Filename,
		Content:  src,
	}

	return upload, func() { _ = src.Close() }, nil
}

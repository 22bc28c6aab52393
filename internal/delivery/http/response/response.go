// Package response builds the uniform JSON envelope returned by every
// endpoint.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"institute/internal/pagination"
)

// Response is the unified API response structure.
type Response struct {
	Success    bool                   `json:"success"`
	Data       any                    `json:"data,omitempty"`
	Message    string                 `json:"message,omitempty"`
	Pagination *pagination.Pagination `json:"pagination,omitempty"`
	Error      *ErrorInfo             `json:"error,omitempty"`
}

// ErrorInfo carries the machine-readable error block of a failed response.
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g., "VALIDATION_ERROR"
	Message string `json:"message"` // User-friendly message
	Details any    `json:"details,omitempty"`
}

// Success writes a successful response.
func Success(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// Page writes a successful list response with pagination metadata.
func Page(c echo.Context, data any, page *pagination.Pagination) error {
	return c.JSON(http.StatusOK, Response{
		Success:    true,
		Data:       data,
		Pagination: page,
	})
}

// Error writes a failed response.
func Error(c echo.Context, statusCode int, errorCode, message string, details any) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
	})
}

// BindingError writes a 400 for request bodies that could not be decoded.
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, nil)
}

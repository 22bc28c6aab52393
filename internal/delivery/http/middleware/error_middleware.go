package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"institute/config"
	"institute/internal/delivery/http/response"
	domainerrors "institute/internal/domain/errors"
	"institute/internal/errors"
)

// ErrorMiddleware centralizes error-to-envelope mapping for all handlers.
type ErrorMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewErrorMiddleware creates the centralized error handler.
func NewErrorMiddleware(cfg *config.Config, logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}

		code := "HTTP_ERROR"
		if httpErr.Code == http.StatusNotFound {
			code = "NOT_FOUND"
		}

		_ = response.Error(c, httpErr.Code, code, message, nil)

		return
	}

	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	// Internal failures stay opaque unless debugging is on.
	var details any
	if m.debug {
		details = err.Error()
	}

	_ = response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", details)
}

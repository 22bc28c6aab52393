package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"institute/config"
	domainerrors "institute/internal/domain/errors"
	"institute/internal/errors"
)

func newErrorMiddleware(debug bool) *ErrorMiddleware {
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return NewErrorMiddleware(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func handleError(t *testing.T, m *ErrorMiddleware, err error) (int, map[string]any) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m.HandleHTTPError(err, c)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestHandleHTTPError_AppError(t *testing.T) {
	m := newErrorMiddleware(false)

	code, body := handleError(t, m, domainerrors.ErrEmailTaken)

	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, false, body["success"])

	errBlock, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "CONFLICT", errBlock["code"])
	assert.Equal(t, "Email already registered", errBlock["message"])
}

func TestHandleHTTPError_ValidationDetails(t *testing.T) {
	m := newErrorMiddleware(false)

	appErr := domainerrors.NewValidationError([]domainerrors.FieldError{
		{Field: "email", Message: "must be a valid email address"},
	})

	code, body := handleError(t, m, appErr)

	assert.Equal(t, http.StatusUnprocessableEntity, code)
	errBlock := body["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_ERROR", errBlock["code"])

	details, ok := errBlock["details"].([]any)
	require.True(t, ok)
	require.Len(t, details, 1)
	field := details[0].(map[string]any)
	assert.Equal(t, "email", field["field"])
}

func TestHandleHTTPError_WrappedAppError(t *testing.T) {
	m := newErrorMiddleware(false)

	wrapped := errors.Wrap(domainerrors.ErrForbidden, "gate check")
	code, body := handleError(t, m, wrapped)

	assert.Equal(t, http.StatusForbidden, code)
	errBlock := body["error"].(map[string]any)
	assert.Equal(t, "FORBIDDEN", errBlock["code"])
}

func TestHandleHTTPError_EchoNotFound(t *testing.T) {
	m := newErrorMiddleware(false)

	code, body := handleError(t, m, echo.NewHTTPError(http.StatusNotFound, "Not Found"))

	assert.Equal(t, http.StatusNotFound, code)
	errBlock := body["error"].(map[string]any)
	assert.Equal(t, "NOT_FOUND", errBlock["code"])
}

func TestHandleHTTPError_UnknownIsRedacted(t *testing.T) {
	m := newErrorMiddleware(false)

	code, body := handleError(t, m, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, code)
	errBlock := body["error"].(map[string]any)
	assert.Equal(t, "INTERNAL_ERROR", errBlock["code"])
	assert.Equal(t, "Internal server error", errBlock["message"])
	assert.NotContains(t, errBlock, "details")
}

func TestHandleHTTPError_UnknownShowsDetailsInDebug(t *testing.T) {
	m := newErrorMiddleware(true)

	_, body := handleError(t, m, errors.New("pq: connection refused"))

	errBlock := body["error"].(map[string]any)
	assert.Equal(t, "pq: connection refused", errBlock["details"])
}

package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"institute/internal/pagination"
)

func record(t *testing.T, write func(c echo.Context) error) (int, map[string]any) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, write(c))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestSuccess_Envelope(t *testing.T) {
	code, body := record(t, func(c echo.Context) error {
		return Success(c, http.StatusCreated, map[string]string{"id": "x"}, "Created")
	})

	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Created", body["message"])
	assert.NotContains(t, body, "error")
	assert.NotContains(t, body, "pagination")
}

func TestPage_IncludesPaginationBlock(t *testing.T) {
	page := pagination.New(25, pagination.Options{Page: 2, PageSize: 10})

	code, body := record(t, func(c echo.Context) error {
		return Page(c, []string{"a", "b"}, page)
	})

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])

	block, ok := body["pagination"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 2, block["page"])
	assert.EqualValues(t, 10, block["pageSize"])
	assert.EqualValues(t, 25, block["total"])
	assert.EqualValues(t, 3, block["totalPages"])
}

func TestError_Envelope(t *testing.T) {
	code, body := record(t, func(c echo.Context) error {
		return Error(c, http.StatusConflict, "CONFLICT", "Email already registered", nil)
	})

	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, false, body["success"])
	assert.NotContains(t, body, "data")

	errBlock, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "CONFLICT", errBlock["code"])
	assert.Equal(t, "Email already registered", errBlock["message"])
}

func TestError_DefaultsMessageToStatusText(t *testing.T) {
	_, body := record(t, func(c echo.Context) error {
		return Error(c, http.StatusTeapot, "TEAPOT", "", nil)
	})

	errBlock := body["error"].(map[string]any)
	assert.Equal(t, http.StatusText(http.StatusTeapot), errBlock["message"])
}

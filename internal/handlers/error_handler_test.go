package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func handleError(path string, err error) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	NewHTTPErrorHandler(e)(err, e.NewContext(req, rec))
	return rec
}

func TestHTTPErrorHandler_APIHTTPError(t *testing.T) {
	rec := handleError("/api/products", echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"limit must be a non-negative integer"}`, rec.Body.String())
}

func TestHTTPErrorHandler_APIPlainError(t *testing.T) {
	rec := handleError("/api/widgets", errors.New("unexpected"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"unexpected"}`, rec.Body.String())
}

func TestHTTPErrorHandler_NonAPIUsesDefault(t *testing.T) {
	rec := handleError("/static/missing.txt", echo.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Not Found"}`, rec.Body.String())
}

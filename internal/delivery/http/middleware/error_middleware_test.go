package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	domainerrors "truefind/internal/domain/errors"
)

func newErrorContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/verified/", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newErrorMiddleware() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestErrorMiddleware_AppErrorMapsStatusAndBody(t *testing.T) {
	m := newErrorMiddleware()
	c, rec := newErrorContext()

	m.HandleHTTPError(domainerrors.ErrMissingIDToken, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "No ID token provided"}`, rec.Body.String())
}

func TestErrorMiddleware_AppErrorPrefersDetails(t *testing.T) {
	m := newErrorMiddleware()
	c, rec := newErrorContext()

	m.HandleHTTPError(domainerrors.ErrUpstreamAuthFailed.WithDetails("ID token has expired"), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "ID token has expired"}`, rec.Body.String())
}

func TestErrorMiddleware_WrappedAppErrorStillMatches(t *testing.T) {
	m := newErrorMiddleware()
	c, rec := newErrorContext()

	m.HandleHTTPError(errors.Wrap(domainerrors.ErrUnauthorized, "middleware"), c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error": "Authentication required"}`, rec.Body.String())
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	m := newErrorMiddleware()
	c, rec := newErrorContext()

	m.HandleHTTPError(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "Not Found"}`, rec.Body.String())
}

func TestErrorMiddleware_UnknownErrorIsInternal(t *testing.T) {
	m := newErrorMiddleware()
	c, rec := newErrorContext()

	m.HandleHTTPError(errors.New("connection reset"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Internal server error"}`, rec.Body.String())
}

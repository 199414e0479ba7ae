package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "bazaar/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newErrorTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/offers", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestErrorMiddleware_RendersAppError(t *testing.T) {
	m := NewErrorMiddleware(slog.Default())
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(errors.WithStack(domainerrors.ErrOfferNotFound), c)

	assert.Equal(t, domainerrors.ErrOfferNotFound.HTTPCode(), rec.Code)
	assert.Contains(t, rec.Body.String(), domainerrors.ErrOfferNotFound.ErrorCode())
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestErrorMiddleware_RendersReviewConflict(t *testing.T) {
	m := NewErrorMiddleware(slog.Default())
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(domainerrors.ErrReviewAlreadyExists, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "You have already rated this user.")
}

func TestErrorMiddleware_RendersEchoHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.Default())
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusNotFound, "route not found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}

func TestErrorMiddleware_FallsBackToInternalError(t *testing.T) {
	m := NewErrorMiddleware(slog.Default())
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(errors.New("connection reset"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
}

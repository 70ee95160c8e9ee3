package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"evently/internal/delivery/http/response"
	domainerrors "evently/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m.HandleHTTPError(err, c)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestErrorMiddleware_MapsAppErrors(t *testing.T) {
	rec, body := handleError(t, domainerrors.ErrUserNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "USER_NOT_FOUND", body.Error.Code)
}

func TestErrorMiddleware_MapsWrappedAppErrors(t *testing.T) {
	wrapped := errors.Wrap(domainerrors.ErrEmailAlreadyExists, "registration failed")

	rec, body := handleError(t, wrapped)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "EMAIL_ALREADY_EXISTS", body.Error.Code)
}

func TestErrorMiddleware_MasksUnknownErrors(t *testing.T) {
	rec, body := handleError(t, errors.New("pq: connection refused to 10.0.0.7"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	// The driver detail must never reach the client.
	assert.NotContains(t, rec.Body.String(), "10.0.0.7")
}

func TestErrorMiddleware_MasksInternalAppErrorDetails(t *testing.T) {
	err := domainerrors.NewDatabaseExecuteError(errors.New("duplicate key value violates unique constraint"), "failed to insert")

	rec, body := handleError(t, err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, rec.Body.String(), "duplicate key")
}

func TestErrorMiddleware_PassesThroughEchoHTTPErrors(t *testing.T) {
	rec, body := handleError(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}

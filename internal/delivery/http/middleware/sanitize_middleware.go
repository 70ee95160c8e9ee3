package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"evently/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SanitizeMiddleware strips markup from every string field of a JSON request
// body before the handler binds it.
type SanitizeMiddleware struct {
	sanitizer service.Sanitizer
}

// NewSanitizeMiddleware is the constructor for SanitizeMiddleware.
func NewSanitizeMiddleware(sanitizer service.Sanitizer) *SanitizeMiddleware {
	return &SanitizeMiddleware{sanitizer: sanitizer}
}

// Process rewrites the request body with all string values cleaned. Requests
// without a JSON body pass through untouched; an unparsable body is left for
// the handler's bind step to reject.
func (m *SanitizeMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		if req.Body == nil || req.Method == http.MethodGet || req.Method == http.MethodDelete {
			return next(c)
		}
		if !strings.Contains(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
			return next(c)
		}

		body, err := io.ReadAll(req.Body)
		if err != nil {
			return errors.Wrap(err, "failed to read request body")
		}
		_ = req.Body.Close()

		if len(bytes.TrimSpace(body)) == 0 {
			req.Body = io.NopCloser(bytes.NewReader(body))

			return next(c)
		}

		var payload any
		if err := json.Unmarshal(body, &payload); err != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))

			return next(c)
		}

		cleaned, err := json.Marshal(m.cleanValue(payload))
		if err != nil {
			return errors.Wrap(err, "failed to encode sanitized body")
		}

		req.Body = io.NopCloser(bytes.NewReader(cleaned))
		req.ContentLength = int64(len(cleaned))

		return next(c)
	}
}

// cleanValue walks decoded JSON and sanitizes every string, including those
// nested in objects and arrays.
func (m *SanitizeMiddleware) cleanValue(v any) any {
	switch val := v.(type) {
	case string:
		return m.sanitizer.Clean(val)
	case map[string]any:
		for k, item := range val {
			val[k] = m.cleanValue(item)
		}

		return val
	case []any:
		for i, item := range val {
			val[i] = m.cleanValue(item)
		}

		return val
	default:
		return v
	}
}

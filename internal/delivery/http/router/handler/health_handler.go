// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"evently/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// Ping is a liveness probe.
func Ping(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "pong")
}

package middleware

import (
	"strings"

	deliverycontext "evently/internal/delivery/context"
	"evently/internal/delivery/http/response"
	"evently/internal/domain/repository"
	"evently/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware resolves the session behind an Authorization header: it
// validates the bearer token and loads the account it names, exactly one
// store lookup per request.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer token, loads the user and stores it in
// the request context. Missing headers, malformed headers, invalid tokens and
// tokens for deleted or unknown accounts all fail with 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		// The header must be exactly two space-separated fields: the scheme
		// and the token. The scheme value itself is not inspected.
		parts := strings.Fields(authHeader)
		if len(parts) != 2 {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Validate(parts[1])
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
			}

			return errors.Wrap(err, "failed to resolve session user")
		}

		if !user.IsActive() {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		deliverycontext.SetUser(c, user)

		return next(c)
	}
}

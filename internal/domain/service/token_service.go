package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by a session token.
type Claims struct {
	UserID uuid.UUID `json:"id"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session tokens.
// Tokens are stateless: validity is solely a function of signature and
// expiry, with no server-side revocation list.
type TokenService interface {
	// Generate signs a new time-bound session token for the given account.
	Generate(userID uuid.UUID) (string, error)

	// Validate checks signature and expiry. Every failure mode (malformed,
	// expired, bad signature) is reported uniformly as an error; the caller
	// must not distinguish expiry from forgery.
	Validate(tokenString string) (*Claims, error)
}

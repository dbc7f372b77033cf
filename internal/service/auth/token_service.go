package auth

import (
	"context"
	"time"
)

// accessTokenType is stamped on every issued token and required on validation.
const accessTokenType = "access"

// TokenService defines operations for issuing and verifying owner tokens.
type TokenService interface {
	// GenerateToken creates a signed access token whose subject is ownerID.
	GenerateToken(ctx context.Context, ownerID string) (string, error)

	// ValidateToken verifies tokenString and returns its claims.
	// Returns ErrExpiredToken, ErrTokenNotYetValid, ErrWrongTokenType or
	// ErrInvalidToken when the token cannot be trusted.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the verified content of an access token.
type Claims struct {
	// OwnerID is the identity every task operation is scoped to.
	OwnerID   string
	TokenType string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}

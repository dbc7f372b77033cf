package auth

import "errors"

// Sentinels returned by TokenService. The identity middleware maps each of
// them to a 401 response.
var (
	ErrMissingToken     = errors.New("authentication token is missing")
	ErrInvalidToken     = errors.New("invalid authentication token")
	ErrExpiredToken     = errors.New("authentication token has expired")
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")
	ErrWrongTokenType   = errors.New("token is not an access token")

	// ErrEmptyOwner is returned by GenerateToken for a blank owner ID.
	ErrEmptyOwner = errors.New("owner id cannot be empty")
)

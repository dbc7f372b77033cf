// Package auth issues and verifies the bearer tokens that carry a caller's
// owner identity. Tokens are HS256-signed JWTs whose subject is the owner ID.
package auth

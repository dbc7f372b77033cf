// Package testutils holds helpers shared by tests across packages, chiefly
// an in-memory slog handler for asserting on structured log output.
package testutils

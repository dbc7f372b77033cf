// Package middleware provides the HTTP middleware shared by every API route:
// request tracing and owner identity resolution.
package middleware

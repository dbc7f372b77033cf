// Package service contains the application use cases. TaskService
// orchestrates the task store, the suggestion generator and the event
// emitter on behalf of a single owner per call.
//
// Services depend on the store, generation and events interfaces, never on
// their concrete implementations, so the HTTP layer and tests can supply any
// combination of backends.
//
// Error handling principles:
//  1. Expected conditions are returned as sentinel errors from domain, store
//     and generation, unchanged, so callers can use errors.Is.
//  2. Unexpected failures are wrapped in TaskServiceError, which records the
//     failed operation and still unwraps to the cause.
//  3. The API layer maps errors to HTTP status codes.
package service

// Package api handles incoming HTTP requests, request validation and
// response formatting for the task endpoints. It adapts HTTP to
// service.TaskService and maps service errors to status codes.
package api

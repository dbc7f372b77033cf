package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/taskflow-api/internal/api/shared"
	"github.com/phrazzld/taskflow-api/internal/domain"
	"github.com/phrazzld/taskflow-api/internal/generation"
	"github.com/phrazzld/taskflow-api/internal/service"
	"github.com/phrazzld/taskflow-api/internal/service/auth"
	"github.com/phrazzld/taskflow-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"task not found", store.ErrTaskNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("update: %w", store.ErrTaskNotFound), http.StatusNotFound},
		{"empty title", domain.ErrEmptyTitle, http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"invalid topic", generation.ErrInvalidTopic, http.StatusBadRequest},
		{"invalid json", shared.ErrInvalidJSON, http.StatusBadRequest},
		{"validator errors", validator.ValidationErrors{}, http.StatusBadRequest},
		{"service error", &service.TaskServiceError{Operation: "x", Err: errors.New("boom")}, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage_NeverLeaksInternalText(t *testing.T) {
	err := &service.TaskServiceError{
		Operation: "list_tasks",
		Message:   "failed to list tasks",
		Err:       errors.New("connection to 10.0.0.5 refused"),
	}
	msg := GetSafeErrorMessage(err)
	assert.Equal(t, "An unexpected error occurred", msg)
	assert.NotContains(t, msg, "10.0.0.5")
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
}

func TestSanitizeValidationError(t *testing.T) {
	type sample struct {
		Title string   `validate:"required"`
		Tags  []string `validate:"min=1"`
		Name  string   `validate:"max=3"`
	}
	v := validator.New()

	tests := []struct {
		name  string
		input sample
		want  string
	}{
		{"required", sample{Tags: []string{"a"}}, "Title is required"},
		{"empty slice", sample{Title: "t", Tags: []string{}}, "Tags must not be empty"},
		{"too long", sample{Title: "t", Tags: []string{"a"}, Name: "abcd"}, "Name is too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			assert.Equal(t, tt.want, SanitizeValidationError(err))
		})
	}

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("other")))
}

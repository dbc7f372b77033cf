package api

import (
	"bytes"
	"encoding/json"

	"github.com/phrazzld/taskflow-api/internal/domain"
)

// CreateTaskRequest defines the payload for creating a single task.
type CreateTaskRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Completed   *bool  `json:"completed"`
}

// ToInput applies boundary defaults and converts the request to domain input.
func (r CreateTaskRequest) ToInput() domain.NewTaskInput {
	input := domain.NewTaskInput{
		Title:       r.Title,
		Description: r.Description,
		Category:    domain.NormalizeCategory(r.Category),
	}
	if r.Completed != nil {
		input.Completed = *r.Completed
	}
	return input
}

// CreateTasksRequest defines the payload for creating several tasks at once.
// An empty array is valid and creates nothing.
type CreateTasksRequest struct {
	Tasks []CreateTaskRequest `json:"tasks" validate:"required,dive"`
}

// ToInputs converts every element to domain input, preserving order.
func (r CreateTasksRequest) ToInputs() []domain.NewTaskInput {
	inputs := make([]domain.NewTaskInput, len(r.Tasks))
	for i, t := range r.Tasks {
		inputs[i] = t.ToInput()
	}
	return inputs
}

// createTaskBody is the union accepted by POST /tasks: either the fields of
// a single task, or a "tasks" array for a batch.
type createTaskBody struct {
	CreateTaskRequest
	Tasks json.RawMessage `json:"tasks"`
}

// isBatch reports whether the body carries a "tasks" array. Any other value
// of "tasks" is ignored and the body is treated as a single task.
func (b createTaskBody) isBatch() bool {
	trimmed := bytes.TrimSpace(b.Tasks)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// UpdateTaskRequest defines the payload for a partial task update.
// Absent fields are left unchanged; id, owner and creation time cannot be set.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Completed   *bool   `json:"completed"`
}

// ToPatch converts the request to a domain patch.
func (r UpdateTaskRequest) ToPatch() domain.TaskPatch {
	return domain.TaskPatch{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Completed:   r.Completed,
	}
}

// GenerateTasksRequest defines the payload for the suggestion endpoint.
type GenerateTasksRequest struct {
	Topic string `json:"topic" validate:"required"`
}

// TaskListResponse is returned by GET /tasks.
type TaskListResponse struct {
	Tasks   []*domain.Task `json:"tasks"`
	Success bool           `json:"success"`
}

// TaskResponse is returned when a single task is created or updated.
type TaskResponse struct {
	Task    *domain.Task `json:"task"`
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
}

// TasksCreatedResponse is returned when a batch of tasks is created.
type TasksCreatedResponse struct {
	Tasks   []*domain.Task `json:"tasks"`
	Success bool           `json:"success"`
	Message string         `json:"message"`
}

// DeleteTaskResponse is returned when a task is deleted.
type DeleteTaskResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// StatsResponse is returned by GET /tasks/stats.
type StatsResponse struct {
	Stats   *domain.TaskStats `json:"stats"`
	Success bool              `json:"success"`
}

// GenerateTasksResponse is returned by POST /generate-tasks.
type GenerateTasksResponse struct {
	Tasks   []domain.Suggestion `json:"tasks"`
	Success bool                `json:"success"`
}

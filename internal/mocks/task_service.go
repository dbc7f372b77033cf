package mocks

import (
	"context"

	"github.com/phrazzld/taskflow-api/internal/domain"
)

// MockTaskService is a mock implementation of service.TaskService for testing.
// The service package cannot be imported here without a cycle in its own
// tests, so conformance is asserted by the consumers.
type MockTaskService struct {
	ListTasksFn    func(ctx context.Context, ownerID string) ([]*domain.Task, error)
	CreateTaskFn   func(ctx context.Context, ownerID string, input domain.NewTaskInput) (*domain.Task, error)
	CreateTasksFn  func(ctx context.Context, ownerID string, inputs []domain.NewTaskInput) ([]*domain.Task, error)
	UpdateTaskFn   func(ctx context.Context, ownerID, taskID string, patch domain.TaskPatch) (*domain.Task, error)
	DeleteTaskFn   func(ctx context.Context, ownerID, taskID string) error
	GetStatsFn     func(ctx context.Context, ownerID string) (*domain.TaskStats, error)
	SuggestTasksFn func(ctx context.Context, ownerID, topic string) ([]domain.Suggestion, error)
}

// ListTasks implements service.TaskService
func (m *MockTaskService) ListTasks(ctx context.Context, ownerID string) ([]*domain.Task, error) {
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx, ownerID)
	}
	return []*domain.Task{}, nil
}

// CreateTask implements service.TaskService
func (m *MockTaskService) CreateTask(
	ctx context.Context,
	ownerID string,
	input domain.NewTaskInput,
) (*domain.Task, error) {
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, ownerID, input)
	}
	return nil, nil
}

// CreateTasks implements service.TaskService
func (m *MockTaskService) CreateTasks(
	ctx context.Context,
	ownerID string,
	inputs []domain.NewTaskInput,
) ([]*domain.Task, error) {
	if m.CreateTasksFn != nil {
		return m.CreateTasksFn(ctx, ownerID, inputs)
	}
	return nil, nil
}

// UpdateTask implements service.TaskService
func (m *MockTaskService) UpdateTask(
	ctx context.Context,
	ownerID, taskID string,
	patch domain.TaskPatch,
) (*domain.Task, error) {
	if m.UpdateTaskFn != nil {
		return m.UpdateTaskFn(ctx, ownerID, taskID, patch)
	}
	return nil, nil
}

// DeleteTask implements service.TaskService
func (m *MockTaskService) DeleteTask(ctx context.Context, ownerID, taskID string) error {
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, ownerID, taskID)
	}
	return nil
}

// GetStats implements service.TaskService
func (m *MockTaskService) GetStats(ctx context.Context, ownerID string) (*domain.TaskStats, error) {
	if m.GetStatsFn != nil {
		return m.GetStatsFn(ctx, ownerID)
	}
	return nil, nil
}

// SuggestTasks implements service.TaskService
func (m *MockTaskService) SuggestTasks(
	ctx context.Context,
	ownerID, topic string,
) ([]domain.Suggestion, error) {
	if m.SuggestTasksFn != nil {
		return m.SuggestTasksFn(ctx, ownerID, topic)
	}
	return nil, nil
}

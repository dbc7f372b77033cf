package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/taskflow-api/internal/domain"
	"github.com/phrazzld/taskflow-api/internal/events"
	"github.com/phrazzld/taskflow-api/internal/generation"
	"github.com/phrazzld/taskflow-api/internal/platform/logger"
	"github.com/phrazzld/taskflow-api/internal/redact"
	"github.com/phrazzld/taskflow-api/internal/store"
)

// TaskService provides the task operations available to one owner.
type TaskService interface {
	// ListTasks returns the owner's tasks in insertion order.
	ListTasks(ctx context.Context, ownerID string) ([]*domain.Task, error)

	// CreateTask stores a single task for the owner.
	CreateTask(ctx context.Context, ownerID string, input domain.NewTaskInput) (*domain.Task, error)

	// CreateTasks stores every input for the owner, or none if any is invalid.
	CreateTasks(ctx context.Context, ownerID string, inputs []domain.NewTaskInput) ([]*domain.Task, error)

	// UpdateTask applies a partial update to one of the owner's tasks.
	UpdateTask(ctx context.Context, ownerID, taskID string, patch domain.TaskPatch) (*domain.Task, error)

	// DeleteTask removes one of the owner's tasks.
	// Returns store.ErrTaskNotFound when nothing was removed.
	DeleteTask(ctx context.Context, ownerID, taskID string) error

	// GetStats summarizes the owner's tasks.
	GetStats(ctx context.Context, ownerID string) (*domain.TaskStats, error)

	// SuggestTasks proposes tasks for topic without storing them.
	SuggestTasks(ctx context.Context, ownerID, topic string) ([]domain.Suggestion, error)
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	tasks     store.TaskStore
	generator generation.Generator
	emitter   events.EventEmitter
	logger    *slog.Logger
}

var _ TaskService = (*taskServiceImpl)(nil)

// NewTaskService creates a new TaskService.
// It returns an error if any of the required dependencies are nil.
func NewTaskService(
	tasks store.TaskStore,
	generator generation.Generator,
	emitter events.EventEmitter,
	logger *slog.Logger,
) (TaskService, error) {
	if tasks == nil {
		return nil, &TaskServiceError{Operation: "create_service", Message: "task store cannot be nil"}
	}
	if generator == nil {
		return nil, &TaskServiceError{Operation: "create_service", Message: "generator cannot be nil"}
	}
	if emitter == nil {
		return nil, &TaskServiceError{Operation: "create_service", Message: "event emitter cannot be nil"}
	}
	if logger == nil {
		return nil, &TaskServiceError{Operation: "create_service", Message: "logger cannot be nil"}
	}

	return &taskServiceImpl{
		tasks:     tasks,
		generator: generator,
		emitter:   emitter,
		logger:    logger.With("component", "task_service"),
	}, nil
}

// ListTasks implements TaskService.
func (s *taskServiceImpl) ListTasks(ctx context.Context, ownerID string) ([]*domain.Task, error) {
	tasks, err := s.tasks.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, NewTaskServiceError("list_tasks", "failed to list tasks", err)
	}
	return tasks, nil
}

// CreateTask implements TaskService.
func (s *taskServiceImpl) CreateTask(
	ctx context.Context,
	ownerID string,
	input domain.NewTaskInput,
) (*domain.Task, error) {
	task, err := s.tasks.Create(ctx, ownerID, input)
	if err != nil {
		return nil, NewTaskServiceError("create_task", "failed to create task", err)
	}

	s.log(ctx).Debug("task created", "owner_id", ownerID, "task_id", task.ID)
	s.emit(ctx, events.NewTaskEvent(events.TypeTaskCreated, ownerID, task.ID))

	return task, nil
}

// CreateTasks implements TaskService.
func (s *taskServiceImpl) CreateTasks(
	ctx context.Context,
	ownerID string,
	inputs []domain.NewTaskInput,
) ([]*domain.Task, error) {
	tasks, err := s.tasks.CreateMany(ctx, ownerID, inputs)
	if err != nil {
		return nil, NewTaskServiceError("create_tasks", "failed to create tasks", err)
	}
	if len(tasks) == 0 {
		return tasks, nil
	}

	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}

	s.log(ctx).Debug("tasks created", "owner_id", ownerID, "count", len(tasks))
	s.emit(ctx, events.NewTaskEvent(events.TypeTaskCreated, ownerID, ids...))

	return tasks, nil
}

// UpdateTask implements TaskService.
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	ownerID, taskID string,
	patch domain.TaskPatch,
) (*domain.Task, error) {
	task, err := s.tasks.Update(ctx, taskID, ownerID, patch)
	if err != nil {
		return nil, NewTaskServiceError("update_task", "failed to update task", err)
	}

	s.log(ctx).Debug("task updated", "owner_id", ownerID, "task_id", taskID)
	s.emit(ctx, events.NewTaskEvent(events.TypeTaskUpdated, ownerID, taskID))

	return task, nil
}

// DeleteTask implements TaskService.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, ownerID, taskID string) error {
	removed, err := s.tasks.Delete(ctx, taskID, ownerID)
	if err != nil {
		return NewTaskServiceError("delete_task", "failed to delete task", err)
	}
	if !removed {
		return store.ErrTaskNotFound
	}

	s.log(ctx).Debug("task deleted", "owner_id", ownerID, "task_id", taskID)
	s.emit(ctx, events.NewTaskEvent(events.TypeTaskDeleted, ownerID, taskID))

	return nil
}

// GetStats implements TaskService.
func (s *taskServiceImpl) GetStats(ctx context.Context, ownerID string) (*domain.TaskStats, error) {
	stats, err := s.tasks.Stats(ctx, ownerID)
	if err != nil {
		return nil, NewTaskServiceError("get_stats", "failed to compute task statistics", err)
	}
	return stats, nil
}

// SuggestTasks implements TaskService.
func (s *taskServiceImpl) SuggestTasks(
	ctx context.Context,
	ownerID, topic string,
) ([]domain.Suggestion, error) {
	suggestions, err := s.generator.Generate(ctx, topic)
	if err != nil {
		return nil, NewTaskServiceError("suggest_tasks", "failed to generate suggestions", err)
	}

	s.log(ctx).Debug("tasks suggested", "owner_id", ownerID, "count", len(suggestions))
	s.emit(ctx, events.NewTaskEvent(events.TypeTasksSuggested, ownerID))

	return suggestions, nil
}

// emit publishes event. Failures are logged and never reach the caller.
func (s *taskServiceImpl) emit(ctx context.Context, event *events.TaskEvent) {
	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		s.log(ctx).Warn("failed to emit task event",
			"event_type", event.Type,
			"event_id", event.ID,
			"owner_id", event.OwnerID,
			"error", redact.Error(err))
	}
}

func (s *taskServiceImpl) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger)
}

package store

import (
	"context"

	"github.com/phrazzld/taskflow-api/internal/domain"
)

// TaskStore owns the authoritative collection of tasks. Every operation is
// scoped by owner ID: a task is only visible to callers presenting its exact
// owner identifier.
type TaskStore interface {
	// ListByOwner returns the owner's tasks in insertion order.
	// It returns an empty slice, not an error, when the owner has none.
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Task, error)

	// Create allocates an ID, stamps both timestamps and appends the task.
	// Returns an error wrapping ErrInvalidEntity if the input is invalid.
	Create(ctx context.Context, ownerID string, input domain.NewTaskInput) (*domain.Task, error)

	// CreateMany creates every input in order. Either all inputs are stored
	// or, if any is invalid, none are.
	CreateMany(ctx context.Context, ownerID string, inputs []domain.NewTaskInput) ([]*domain.Task, error)

	// FindByID returns ErrTaskNotFound unless both ID and owner match.
	FindByID(ctx context.Context, id, ownerID string) (*domain.Task, error)

	// Update merges the patch into the matching task and refreshes UpdatedAt.
	// Returns ErrTaskNotFound if no task matches ID and owner.
	Update(ctx context.Context, id, ownerID string, patch domain.TaskPatch) (*domain.Task, error)

	// Delete removes the matching task and reports whether one was removed.
	// A missing task is not an error.
	Delete(ctx context.Context, id, ownerID string) (bool, error)

	// Stats recomputes the owner's completion statistics from current contents.
	Stats(ctx context.Context, ownerID string) (*domain.TaskStats, error)
}

package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/phrazzld/taskflow-api/internal/domain"
	"github.com/phrazzld/taskflow-api/internal/platform/logger"
	"github.com/phrazzld/taskflow-api/internal/store"
)

// TaskStore implements store.TaskStore in memory.
type TaskStore struct {
	mu     sync.RWMutex
	tasks  []*domain.Task
	ids    store.IDGenerator
	now    func() time.Time
	logger *slog.Logger
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// Option customises a TaskStore.
type Option func(*TaskStore)

// WithIDGenerator sets the identifier allocation strategy. Defaults to UUIDs.
func WithIDGenerator(ids store.IDGenerator) Option {
	return func(s *TaskStore) {
		s.ids = ids
	}
}

// WithClock sets the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *TaskStore) {
		s.now = now
	}
}

// NewTaskStore creates an empty in-memory task store.
// If logger is nil, a default logger will be used.
func NewTaskStore(logger *slog.Logger, opts ...Option) *TaskStore {
	if logger == nil {
		logger = slog.Default()
	}

	s := &TaskStore{
		ids:    store.UUIDGenerator{},
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger.With(slog.String("component", "task_store")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListByOwner implements store.TaskStore.ListByOwner
func (s *TaskStore) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.ownedLocked(ownerID), nil
}

// Create implements store.TaskStore.Create
func (s *TaskStore) Create(
	ctx context.Context,
	ownerID string,
	input domain.NewTaskInput,
) (*domain.Task, error) {
	created, err := s.CreateMany(ctx, ownerID, []domain.NewTaskInput{input})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

// CreateMany implements store.TaskStore.CreateMany
// Every input is validated before anything is inserted, so a failing batch
// leaves the store unchanged.
func (s *TaskStore) CreateMany(
	ctx context.Context,
	ownerID string,
	inputs []domain.NewTaskInput,
) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if ownerID == "" {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrEmptyOwnerID)
	}
	for i, input := range inputs {
		if err := domain.ValidateInput(input); err != nil {
			log.Debug("task validation failed during create",
				slog.Int("index", i),
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("%w: task %d: %w", store.ErrInvalidEntity, i, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	created := make([]*domain.Task, 0, len(inputs))
	for _, input := range inputs {
		task, err := domain.NewTask(s.ids.NewID(), ownerID, input, now)
		if err != nil {
			// Inputs were validated above; reaching this means the ID
			// generator misbehaved. Nothing has been appended yet.
			return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
		}
		created = append(created, task)
	}

	result := make([]*domain.Task, len(created))
	for i, task := range created {
		s.tasks = append(s.tasks, task)
		result[i] = task.Clone()
	}

	log.Debug("tasks created",
		slog.String("owner_id", ownerID),
		slog.Int("count", len(result)))

	return result, nil
}

// FindByID implements store.TaskStore.FindByID
func (s *TaskStore) FindByID(ctx context.Context, id, ownerID string) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexLocked(id, ownerID)
	if idx < 0 {
		return nil, store.ErrTaskNotFound
	}
	return s.tasks[idx].Clone(), nil
}

// Update implements store.TaskStore.Update
func (s *TaskStore) Update(
	ctx context.Context,
	id, ownerID string,
	patch domain.TaskPatch,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Existence wins over patch validity: a missing or foreign task is
	// NotFound whatever the payload.
	idx := s.indexLocked(id, ownerID)
	if idx < 0 {
		return nil, store.ErrTaskNotFound
	}

	// Apply validates, and works on a copy so the stored record only
	// changes on success.
	updated := s.tasks[idx].Clone()
	if err := patch.Apply(updated, s.now()); err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}
	s.tasks[idx] = updated

	log.Debug("task updated",
		slog.String("task_id", id),
		slog.String("owner_id", ownerID))

	return updated.Clone(), nil
}

// Delete implements store.TaskStore.Delete
func (s *TaskStore) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id, ownerID)
	if idx < 0 {
		return false, nil
	}

	copy(s.tasks[idx:], s.tasks[idx+1:])
	s.tasks[len(s.tasks)-1] = nil
	s.tasks = s.tasks[:len(s.tasks)-1]

	logger.FromContextOrDefault(ctx, s.logger).Debug("task deleted",
		slog.String("task_id", id),
		slog.String("owner_id", ownerID))

	return true, nil
}

// Stats implements store.TaskStore.Stats
func (s *TaskStore) Stats(ctx context.Context, ownerID string) (*domain.TaskStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	owned := make([]*domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.OwnerID == ownerID {
			owned = append(owned, t)
		}
	}
	return domain.ComputeStats(owned), nil
}

// Len returns the number of tasks across all owners.
func (s *TaskStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

func (s *TaskStore) ownedLocked(ownerID string) []*domain.Task {
	owned := make([]*domain.Task, 0)
	for _, t := range s.tasks {
		if t.OwnerID == ownerID {
			owned = append(owned, t.Clone())
		}
	}
	return owned
}

func (s *TaskStore) indexLocked(id, ownerID string) int {
	for i, t := range s.tasks {
		if t.ID == id && t.OwnerID == ownerID {
			return i
		}
	}
	return -1
}

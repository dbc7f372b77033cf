package service

import (
	"context"
	"errors"
	"sync"

	"github.com/phrazzld/taskflow-api/internal/domain"
	"github.com/phrazzld/taskflow-api/internal/events"
	"github.com/phrazzld/taskflow-api/internal/store"
)

var errBackend = errors.New("backend unavailable")

// failingTaskStore is a store.TaskStore whose every operation fails with err.
type failingTaskStore struct {
	err error
}

var _ store.TaskStore = failingTaskStore{}

func (f failingTaskStore) ListByOwner(context.Context, string) ([]*domain.Task, error) {
	return nil, f.err
}

func (f failingTaskStore) Create(context.Context, string, domain.NewTaskInput) (*domain.Task, error) {
	return nil, f.err
}

func (f failingTaskStore) CreateMany(context.Context, string, []domain.NewTaskInput) ([]*domain.Task, error) {
	return nil, f.err
}

func (f failingTaskStore) FindByID(context.Context, string, string) (*domain.Task, error) {
	return nil, f.err
}

func (f failingTaskStore) Update(context.Context, string, string, domain.TaskPatch) (*domain.Task, error) {
	return nil, f.err
}

func (f failingTaskStore) Delete(context.Context, string, string) (bool, error) {
	return false, f.err
}

func (f failingTaskStore) Stats(context.Context, string) (*domain.TaskStats, error) {
	return nil, f.err
}

// recordingEmitter captures emitted events and optionally fails.
type recordingEmitter struct {
	mu     sync.Mutex
	events []*events.TaskEvent
	err    error
}

func (r *recordingEmitter) EmitEvent(_ context.Context, event *events.TaskEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return r.err
}

func (r *recordingEmitter) Emitted() []*events.TaskEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*events.TaskEvent(nil), r.events...)
}

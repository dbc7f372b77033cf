package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockEventHandler records the events it receives.
type MockEventHandler struct {
	mu           sync.Mutex
	HandledCount int
	LastEvent    *TaskEvent
	HandlerError error
}

func (m *MockEventHandler) HandleEvent(ctx context.Context, event *TaskEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.HandledCount++
	m.LastEvent = event
	return m.HandlerError
}

func TestInMemoryEventEmitter(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("emit event with no handlers", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)
		err := emitter.EmitEvent(context.Background(), NewTaskEvent(TypeTaskCreated, "u1", "t1"))
		assert.NoError(t, err)
	})

	t.Run("emit event with successful handlers", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)
		handler1 := &MockEventHandler{}
		handler2 := &MockEventHandler{}
		emitter.RegisterHandler(handler1)
		emitter.RegisterHandler(handler2)

		event := NewTaskEvent(TypeTaskUpdated, "u1", "t1")
		require.NoError(t, emitter.EmitEvent(context.Background(), event))

		assert.Equal(t, 1, handler1.HandledCount)
		assert.Equal(t, 1, handler2.HandledCount)
		assert.Same(t, event, handler1.LastEvent)
		assert.Same(t, event, handler2.LastEvent)
	})

	t.Run("failing handler does not stop others", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)
		first := errors.New("first")
		failing := &MockEventHandler{HandlerError: first}
		alsoFailing := &MockEventHandler{HandlerError: errors.New("second")}
		success := &MockEventHandler{}
		emitter.RegisterHandler(failing)
		emitter.RegisterHandler(alsoFailing)
		emitter.RegisterHandler(success)

		err := emitter.EmitEvent(context.Background(), NewTaskEvent(TypeTaskDeleted, "u1", "t1"))

		assert.ErrorIs(t, err, first, "the first error is returned")
		assert.Equal(t, 1, success.HandledCount)
	})

	t.Run("handler func adapter", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(nil)
		var got string
		emitter.RegisterHandler(HandlerFunc(func(ctx context.Context, e *TaskEvent) error {
			got = e.Type
			return nil
		}))

		require.NoError(t, emitter.EmitEvent(context.Background(), NewTaskEvent(TypeTasksSuggested, "u1")))
		assert.Equal(t, TypeTasksSuggested, got)
	})
}

func TestNewTaskEvent(t *testing.T) {
	a := NewTaskEvent(TypeTaskCreated, "u1", "t1", "t2")
	b := NewTaskEvent(TypeTaskCreated, "u1")

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, []string{"t1", "t2"}, a.TaskIDs)
	assert.Empty(t, b.TaskIDs)
	assert.False(t, a.CreatedAt.IsZero())
}

func TestAuditLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := NewAuditLogHandler(slog.New(slog.NewJSONHandler(&buf, nil)))

	event := NewTaskEvent(TypeTaskCreated, "u1", "t1")
	require.NoError(t, h.HandleEvent(context.Background(), event))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "task event", entry["msg"])
	assert.Equal(t, "audit", entry["component"])
	assert.Equal(t, TypeTaskCreated, entry["event_type"])
	assert.Equal(t, "u1", entry["owner_id"])
	assert.Equal(t, event.ID.String(), entry["event_id"])
}

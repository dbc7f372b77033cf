package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/phrazzld/taskflow-api/internal/redact"
)

// Errors returned by AsyncDispatcher.HandleEvent.
var (
	ErrDispatcherClosed = errors.New("event dispatcher is closed")
	ErrQueueFull        = errors.New("event queue is full")
)

// DispatcherConfig sizes an AsyncDispatcher.
type DispatcherConfig struct {
	// Workers is the number of goroutines draining the queue.
	// Values below 1 fall back to the default.
	Workers int

	// QueueSize is the event buffer capacity. Values below 1 fall back to
	// the default.
	QueueSize int
}

// DefaultDispatcherConfig returns the sizes used when none are configured.
func DefaultDispatcherConfig() DispatcherConfig {
	return DispatcherConfig{
		Workers:   2,
		QueueSize: 100,
	}
}

type queuedEvent struct {
	ctx   context.Context
	event *TaskEvent
}

// AsyncDispatcher is an EventHandler that hands events to a wrapped handler
// on a bounded pool of workers, so slow handlers stay off the request path.
// Events are dropped with ErrQueueFull rather than blocking the caller.
type AsyncDispatcher struct {
	next   EventHandler
	queue  chan queuedEvent
	logger *slog.Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

var _ EventHandler = (*AsyncDispatcher)(nil)

// NewAsyncDispatcher starts cfg.Workers goroutines feeding events to next.
func NewAsyncDispatcher(next EventHandler, cfg DispatcherConfig, logger *slog.Logger) *AsyncDispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "event_dispatcher")

	defaults := DefaultDispatcherConfig()
	if cfg.Workers < 1 {
		logger.Warn("invalid worker count specified, using default",
			"specified_count", cfg.Workers,
			"default_count", defaults.Workers)
		cfg.Workers = defaults.Workers
	}
	if cfg.QueueSize < 1 {
		logger.Warn("invalid queue size specified, using default",
			"specified_size", cfg.QueueSize,
			"default_size", defaults.QueueSize)
		cfg.QueueSize = defaults.QueueSize
	}

	d := &AsyncDispatcher{
		next:   next,
		queue:  make(chan queuedEvent, cfg.QueueSize),
		logger: logger,
	}

	d.wg.Add(cfg.Workers)
	for i := 0; i < cfg.Workers; i++ {
		go d.work(i)
	}
	logger.Debug("event dispatcher started",
		"workers", cfg.Workers,
		"queue_size", cfg.QueueSize)

	return d
}

// HandleEvent enqueues event for asynchronous delivery. The request's
// cancellation is detached so delivery survives the response being written;
// context values such as the request logger are kept.
func (d *AsyncDispatcher) HandleEvent(ctx context.Context, event *TaskEvent) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return ErrDispatcherClosed
	}

	select {
	case d.queue <- queuedEvent{ctx: context.WithoutCancel(ctx), event: event}:
		return nil
	default:
		return fmt.Errorf("%w: capacity %d reached", ErrQueueFull, cap(d.queue))
	}
}

// Close stops accepting events and waits for queued ones to be delivered,
// or for ctx to end, whichever comes first.
func (d *AsyncDispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Debug("event dispatcher drained")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("event dispatcher did not drain: %w", ctx.Err())
	}
}

func (d *AsyncDispatcher) work(id int) {
	defer d.wg.Done()

	for item := range d.queue {
		d.deliver(id, item)
	}
}

func (d *AsyncDispatcher) deliver(worker int, item queuedEvent) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("event handler panicked",
				"worker_id", worker,
				"event_id", item.event.ID,
				"event_type", item.event.Type,
				"panic", fmt.Sprint(r))
		}
	}()

	if err := d.next.HandleEvent(item.ctx, item.event); err != nil {
		d.logger.Error("async event handler failed",
			"worker_id", worker,
			"event_id", item.event.ID,
			"event_type", item.event.Type,
			"error", redact.Error(err))
	}
}

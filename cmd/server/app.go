package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/taskflow-api/internal/config"
	"github.com/phrazzld/taskflow-api/internal/events"
	"github.com/phrazzld/taskflow-api/internal/generation"
	"github.com/phrazzld/taskflow-api/internal/platform/gemini"
	"github.com/phrazzld/taskflow-api/internal/platform/memory"
	"github.com/phrazzld/taskflow-api/internal/service"
	"github.com/phrazzld/taskflow-api/internal/service/auth"
	"github.com/phrazzld/taskflow-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	taskStore store.TaskStore
	generator generation.Generator

	tokenService auth.TokenService
	taskService  service.TaskService

	eventEmitter *events.InMemoryEventEmitter
	auditEvents  *events.AsyncDispatcher
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.tokenService, err = auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	logger.Info("token service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	ids, err := store.NewIDGenerator(cfg.Store.IDStrategy)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize id generator: %w", err)
	}
	tasks := memory.NewTaskStore(logger, memory.WithIDGenerator(ids))
	if cfg.Store.SeedDemoData {
		if err := memory.SeedDemo(ctx, tasks, cfg.Auth.DemoUserID); err != nil {
			return nil, err
		}
		logger.Info("demo tasks seeded", "owner_id", cfg.Auth.DemoUserID, "count", tasks.Len())
	}
	app.taskStore = tasks

	app.generator, err = newGenerator(ctx, cfg.LLM, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize suggestion generator: %w", err)
	}
	logger.Info("suggestion generator initialized", "provider", cfg.LLM.Provider)

	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.auditEvents = events.NewAsyncDispatcher(
		events.NewAuditLogHandler(logger),
		events.DispatcherConfig{Workers: cfg.Events.Workers, QueueSize: cfg.Events.QueueSize},
		logger,
	)
	app.eventEmitter.RegisterHandler(app.auditEvents)

	app.taskService, err = service.NewTaskService(app.taskStore, app.generator, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	return app, nil
}

// newGenerator selects the suggestion backend named by cfg.Provider.
func newGenerator(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (generation.Generator, error) {
	switch cfg.Provider {
	case "gemini":
		g, err := gemini.NewGenerator(ctx, logger.With("component", "llm_generator"), cfg)
		if err != nil {
			return nil, err
		}
		return g, nil
	case "stub", "":
		delay := time.Duration(cfg.StubDelayMillis) * time.Millisecond
		return generation.NewStubGenerator(delay, logger), nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", generation.ErrInvalidConfig, cfg.Provider)
	}
}

// Run serves HTTP until shutdown.
func (app *application) Run(ctx context.Context) error {
	return app.startHTTPServer(ctx, app.setupRouter())
}

// cleanup releases resources held by the application. Pending audit events
// are flushed; the in-memory store is discarded with the process, so only
// its final size is reported.
func (app *application) cleanup() {
	if app.auditEvents != nil {
		timeout := time.Duration(app.config.Server.ShutdownTimeoutSeconds) * time.Second
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := app.auditEvents.Close(ctx); err != nil {
			app.logger.Warn("audit events not fully delivered", "error", err)
		}
	}
	if s, ok := app.taskStore.(*memory.TaskStore); ok {
		app.logger.Info("discarding in-memory tasks", "count", s.Len())
	}
}

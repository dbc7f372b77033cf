package events

import (
	"context"
	"log/slog"

	"github.com/phrazzld/taskflow-api/internal/platform/logger"
)

// AuditLogHandler writes every event as a structured INFO log line.
type AuditLogHandler struct {
	logger *slog.Logger
}

// NewAuditLogHandler creates an AuditLogHandler.
func NewAuditLogHandler(logger *slog.Logger) *AuditLogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogHandler{logger: logger.With("component", "audit")}
}

// HandleEvent implements EventHandler.
func (h *AuditLogHandler) HandleEvent(ctx context.Context, event *TaskEvent) error {
	logger.FromContextOrDefault(ctx, h.logger).LogAttrs(ctx, slog.LevelInfo, "task event",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", event.Type),
		slog.String("owner_id", event.OwnerID),
		slog.Any("task_ids", event.TaskIDs),
		slog.Time("event_time", event.CreatedAt))
	return nil
}

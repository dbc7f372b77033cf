package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskflow-api/internal/api/shared"
	"github.com/phrazzld/taskflow-api/internal/domain"
	"github.com/phrazzld/taskflow-api/internal/platform/logger"
	"github.com/phrazzld/taskflow-api/internal/service"
)

// GenerateHandler handles task suggestion requests
type GenerateHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewGenerateHandler creates a new GenerateHandler
func NewGenerateHandler(taskService service.TaskService, logger *slog.Logger) *GenerateHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for GenerateHandler")
	}

	return &GenerateHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "generate_handler")),
	}
}

// GenerateTasks handles POST /generate-tasks requests. Suggestions are
// returned to the caller and never stored.
func (h *GenerateHandler) GenerateTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	ownerID, ok := getOwnerIDFromContext(r)
	if !ok {
		log.Warn("owner ID not found in request context")
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	var req GenerateTasksRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	suggestions, err := h.taskService.SuggestTasks(r.Context(), ownerID, req.Topic)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate tasks")
		return
	}

	log.Debug("tasks generated", slog.Int("count", len(suggestions)))

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateTasksResponse{
		Tasks:   suggestions,
		Success: true,
	})
}

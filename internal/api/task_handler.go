package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskflow-api/internal/api/shared"
	"github.com/phrazzld/taskflow-api/internal/domain"
	"github.com/phrazzld/taskflow-api/internal/platform/logger"
	"github.com/phrazzld/taskflow-api/internal/service"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// ListTasks handles GET /tasks requests
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	ownerID, ok := getOwnerIDFromContext(r)
	if !ok {
		log.Warn("owner ID not found in request context")
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	tasks, err := h.taskService.ListTasks(r.Context(), ownerID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to fetch tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TaskListResponse{
		Tasks:   tasks,
		Success: true,
	})
}

// CreateTask handles POST /tasks requests. The body is either a single task
// or {"tasks": [...]}, which creates every element or none.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	ownerID, ok := getOwnerIDFromContext(r)
	if !ok {
		log.Warn("owner ID not found in request context")
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	var body createTaskBody
	if err := shared.DecodeJSON(w, r, &body); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if body.isBatch() {
		h.createTasks(w, r, ownerID, body)
		return
	}

	req := body.CreateTaskRequest
	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), ownerID, req.ToInput())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create tasks")
		return
	}

	log.Debug("task created", slog.String("task_id", task.ID))

	shared.RespondWithJSON(w, r, http.StatusCreated, TaskResponse{
		Task:    task,
		Success: true,
		Message: "Task created successfully",
	})
}

func (h *TaskHandler) createTasks(w http.ResponseWriter, r *http.Request, ownerID string, body createTaskBody) {
	var req CreateTasksRequest
	if err := decodeRaw(body.Tasks, &req.Tasks); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	tasks, err := h.taskService.CreateTasks(r.Context(), ownerID, req.ToInputs())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, TasksCreatedResponse{
		Tasks:   tasks,
		Success: true,
		Message: fmt.Sprintf("Created %d tasks successfully", len(tasks)),
	})
}

// UpdateTask handles PATCH /tasks/{id} requests
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	ownerID, taskID, ok := handleOwnerAndPathID(w, r, "id", log)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), ownerID, taskID, req.ToPatch())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TaskResponse{
		Task:    task,
		Success: true,
		Message: "Task updated successfully",
	})
}

// DeleteTask handles DELETE /tasks/{id} requests
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	ownerID, taskID, ok := handleOwnerAndPathID(w, r, "id", log)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), ownerID, taskID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteTaskResponse{
		Success: true,
		Message: "Task deleted successfully",
	})
}

// GetStats handles GET /tasks/stats requests
func (h *TaskHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	ownerID, ok := getOwnerIDFromContext(r)
	if !ok {
		log.Warn("owner ID not found in request context")
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	stats, err := h.taskService.GetStats(r.Context(), ownerID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to fetch stats")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, StatsResponse{
		Stats:   stats,
		Success: true,
	})
}

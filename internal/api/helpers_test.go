package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/taskflow-api/internal/api/shared"
	"github.com/phrazzld/taskflow-api/internal/mocks"
	"github.com/phrazzld/taskflow-api/internal/service"
	"github.com/stretchr/testify/require"
)

const testOwner = "user-1"

var _ service.TaskService = (*mocks.MockTaskService)(nil)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestRouter mounts the handlers the way the server does, with the owner
// injected directly instead of through the identity middleware. An empty
// ownerID leaves the context without an owner.
func newTestRouter(svc *mocks.MockTaskService, ownerID string) http.Handler {
	tasks := NewTaskHandler(svc, testLogger())
	generate := NewGenerateHandler(svc, testLogger())

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := shared.SetTraceID(req.Context())
			if ownerID != "" {
				ctx = shared.WithOwnerID(ctx, ownerID)
			}
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	r.Post("/generate-tasks", generate.GenerateTasks)
	r.Get("/tasks", tasks.ListTasks)
	r.Post("/tasks", tasks.CreateTask)
	r.Get("/tasks/stats", tasks.GetStats)
	r.Patch("/tasks/{id}", tasks.UpdateTask)
	r.Delete("/tasks/{id}", tasks.DeleteTask)
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded), "body: %s", rec.Body.String())
	return rec, decoded
}

package memory

import (
	"context"
	"fmt"

	"github.com/phrazzld/taskflow-api/internal/domain"
	"github.com/phrazzld/taskflow-api/internal/store"
)

// DemoTasks are the records a fresh demo deployment starts with.
func DemoTasks() []domain.NewTaskInput {
	return []domain.NewTaskInput{
		{
			Title:       "Learn React Basics",
			Description: "Understand components, props, and state management",
			Category:    "Learn React",
		},
		{
			Title:       "Build a Todo App",
			Description: "Create a simple todo application using React",
			Completed:   true,
			Category:    "Learn React",
		},
	}
}

// SeedDemo inserts DemoTasks for ownerID.
func SeedDemo(ctx context.Context, s store.TaskStore, ownerID string) error {
	if _, err := s.CreateMany(ctx, ownerID, DemoTasks()); err != nil {
		return fmt.Errorf("failed to seed demo tasks: %w", err)
	}
	return nil
}

package domain

import (
	"strings"
	"time"
)

// DefaultCategory is assigned to tasks created or updated without a category.
const DefaultCategory = "General"

// Task is a unit of work owned by a single owner identifier.
//
// JSON names follow the web client's contract, hence camelCase and "userId"
// for the owner.
type Task struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewTaskInput carries the caller-supplied fields of a task to be created.
type NewTaskInput struct {
	Title       string
	Description string
	Completed   bool
	Category    string
}

// NewTask builds a validated task from input. Both timestamps are set to now.
func NewTask(id, ownerID string, input NewTaskInput, now time.Time) (*Task, error) {
	task := &Task{
		ID:          id,
		OwnerID:     ownerID,
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
		Category:    NormalizeCategory(input.Category),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks the invariants every stored task must satisfy.
func (t *Task) Validate() error {
	if t.ID == "" {
		return NewValidationError("id", "cannot be empty", nil)
	}
	if t.OwnerID == "" {
		return ErrEmptyOwnerID
	}
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	if t.Category == "" {
		return NewValidationError("category", "cannot be empty", nil)
	}
	if t.UpdatedAt.Before(t.CreatedAt) {
		return NewValidationError("updatedAt", "cannot precede createdAt", nil)
	}
	return nil
}

// ValidateInput checks the fields a caller must supply to create a task.
func ValidateInput(input NewTaskInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// NormalizeCategory collapses a blank category to DefaultCategory.
func NormalizeCategory(category string) string {
	if strings.TrimSpace(category) == "" {
		return DefaultCategory
	}
	return category
}

// TaskPatch is a partial update. Nil fields are left untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	Category    *string
	Completed   *bool
}

// Validate rejects patches that would break task invariants.
func (p TaskPatch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// Apply merges the patch into t and stamps UpdatedAt. The new timestamp is
// forced strictly after the previous one so that successive updates are
// always ordered, even on coarse clocks.
func (p TaskPatch) Apply(t *Task, now time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Category != nil {
		t.Category = NormalizeCategory(*p.Category)
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}

	if !now.After(t.UpdatedAt) {
		now = t.UpdatedAt.Add(time.Nanosecond)
	}
	t.UpdatedAt = now

	return nil
}

// Clone returns a copy of t that shares no state with it.
func (t *Task) Clone() *Task {
	c := *t
	return &c
}

// Suggestion is a generated, not yet persisted, task idea.
type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports that nothing matched a lookup.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidEntity reports input a store refused to persist. The
	// domain validation error is wrapped alongside it.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrTaskNotFound is returned when no task has both the requested ID and
	// owner. Tasks belonging to another owner are indistinguishable from
	// missing ones.
	ErrTaskNotFound = fmt.Errorf("%w: task", ErrNotFound)
)

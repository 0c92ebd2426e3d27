package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by every lookup failure in the blueprint engine
var ErrNotFound = errors.New("not found")

// NotFoundError describes which part of a blueprint could not be located
type NotFoundError struct {
	Kind string // e.g., "section", "task"
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.Name)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

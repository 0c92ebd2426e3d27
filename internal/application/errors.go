package application

import (
	"errors"
	"fmt"

	"nira/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrNotFound         = domain.ErrNotFound
	ErrInvalidOperation = errors.New("invalid operation")
	ErrAlreadyExists    = errors.New("already exists")
	ErrNoBlueprint      = errors.New("no blueprint")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// BlueprintError reports a blueprint file that cannot be used
type BlueprintError struct {
	Path   string
	Reason string
}

func (e *BlueprintError) Error() string {
	return fmt.Sprintf("blueprint %s: %s", e.Path, e.Reason)
}

func (e *BlueprintError) Is(target error) bool {
	return target == ErrNoBlueprint
}

// ExistsError is returned when init would overwrite an existing blueprint
type ExistsError struct {
	Path string
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("%s already exists (use --force to overwrite)", e.Path)
}

func (e *ExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

package application

import "nira/internal/domain"

// Re-export task statuses for use by adapters
type TaskStatus = domain.TaskStatus

const (
	StatusDone       = domain.StatusDone
	StatusInProgress = domain.StatusInProgress
	StatusNextUp     = domain.StatusNextUp
	StatusIcebox     = domain.StatusIcebox
)

// Re-export domain types for use by adapters
type (
	Blueprint        = domain.Blueprint
	TaskItem         = domain.TaskItem
	TaskQueue        = domain.TaskQueue
	NumberedTask     = domain.NumberedTask
	ValidationResult = domain.ValidationResult
	ValidationStatus = domain.ValidationStatus
	Revision         = domain.Revision
)

// ParseTaskStatus resolves a user-supplied status name
func ParseTaskStatus(s string) (TaskStatus, error) {
	return domain.ParseTaskStatus(s)
}

// ParseBlueprint parses blueprint text without touching the filesystem
func ParseBlueprint(content, path string) *Blueprint {
	return domain.Parse(content, path)
}

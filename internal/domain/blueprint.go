package domain

import (
	"fmt"
	"strings"
)

// TaskStatus is the Task Queue section a task was found in
type TaskStatus int

const (
	StatusDone TaskStatus = iota
	StatusInProgress
	StatusNextUp
	StatusIcebox
)

func (s TaskStatus) String() string {
	switch s {
	case StatusDone:
		return "done"
	case StatusInProgress:
		return "in-progress"
	case StatusNextUp:
		return "next-up"
	case StatusIcebox:
		return "icebox"
	default:
		return "unknown"
	}
}

// Symbol returns the marker used when listing tasks of this status
func (s TaskStatus) Symbol() string {
	switch s {
	case StatusDone:
		return "✓"
	case StatusInProgress:
		return "→"
	case StatusNextUp:
		return "⋯"
	case StatusIcebox:
		return "❄"
	default:
		return "?"
	}
}

// Heading returns the level-3 heading that owns tasks of this status
func (s TaskStatus) Heading() string {
	switch s {
	case StatusDone:
		return "### DONE"
	case StatusInProgress:
		return "### IN PROGRESS"
	case StatusNextUp:
		return "### NEXT UP"
	case StatusIcebox:
		return "### ICEBOX"
	default:
		return ""
	}
}

// Label returns the human-readable section name (e.g., "IN PROGRESS")
func (s TaskStatus) Label() string {
	return strings.TrimPrefix(s.Heading(), "### ")
}

// MarshalText renders the status as its string form for JSON and YAML output
func (s TaskStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseTaskStatus accepts the string form of a status and a few common aliases
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "done":
		return StatusDone, nil
	case "in-progress", "inprogress", "in_progress", "start", "started":
		return StatusInProgress, nil
	case "next-up", "nextup", "next_up", "next":
		return StatusNextUp, nil
	case "icebox", "ice", "later":
		return StatusIcebox, nil
	default:
		return 0, fmt.Errorf("unknown task status %q (expected done, in-progress, next-up, or icebox)", s)
	}
}

// TaskItem is a single checkbox entry from the Task Queue layer.
// Line is the 1-based line offset inside the section it was parsed from and
// is only meaningful for the parse that produced it.
type TaskItem struct {
	Text     string     `json:"text" yaml:"text"`
	Status   TaskStatus `json:"status" yaml:"status"`
	Context  string     `json:"context,omitempty" yaml:"context,omitempty"`
	Files    string     `json:"files,omitempty" yaml:"files,omitempty"`
	Approach string     `json:"approach,omitempty" yaml:"approach,omitempty"`
	Line     int        `json:"line" yaml:"line"`
}

// HasContext reports whether a Context value was given
func (t TaskItem) HasContext() bool { return t.Context != "" }

// HasFiles reports whether a Files value was given
func (t TaskItem) HasFiles() bool { return t.Files != "" }

// HasApproach reports whether an Approach (or Depends on) value was given
func (t TaskItem) HasApproach() bool { return t.Approach != "" }

// TaskQueue holds the four Task Queue sections in source order
type TaskQueue struct {
	Done       []TaskItem
	InProgress []TaskItem
	NextUp     []TaskItem
	Icebox     []TaskItem
}

// NumberedTask pairs an active task with its computed number
type NumberedTask struct {
	Number int      `json:"number" yaml:"number"`
	Task   TaskItem `json:"task" yaml:"task"`
}

// Active returns in-progress, next-up and icebox tasks numbered from 1.
// Done tasks are never numbered.
func (q TaskQueue) Active() []NumberedTask {
	result := make([]NumberedTask, 0, len(q.InProgress)+len(q.NextUp)+len(q.Icebox))
	num := 1
	for _, group := range [][]TaskItem{q.InProgress, q.NextUp, q.Icebox} {
		for _, task := range group {
			result = append(result, NumberedTask{Number: num, Task: task})
			num++
		}
	}
	return result
}

// FindActive resolves an active task number against the current numbering
func (q TaskQueue) FindActive(number int) (TaskItem, bool) {
	for _, nt := range q.Active() {
		if nt.Number == number {
			return nt.Task, true
		}
	}
	return TaskItem{}, false
}

// Len returns the total number of tasks across all sections
func (q TaskQueue) Len() int {
	return len(q.Done) + len(q.InProgress) + len(q.NextUp) + len(q.Icebox)
}

// Blueprint is the parsed view of a blueprint document.
// It is derived from Raw on every parse and never edited in place.
type Blueprint struct {
	Raw          string
	Path         string
	HasIntent    bool
	HasContracts bool
	HasSkeleton  bool
	Tasks        TaskQueue
	ProjectName  string
}

// ValidationStatus is the outcome of a single validation check
type ValidationStatus int

const (
	ValidationOk ValidationStatus = iota
	ValidationWarning
	ValidationMissing
)

func (s ValidationStatus) String() string {
	switch s {
	case ValidationOk:
		return "ok"
	case ValidationWarning:
		return "warning"
	case ValidationMissing:
		return "missing"
	default:
		return "unknown"
	}
}

// Symbol returns the marker printed in front of a validation line
func (s ValidationStatus) Symbol() string {
	switch s {
	case ValidationOk:
		return "✓"
	case ValidationWarning:
		return "⚠"
	case ValidationMissing:
		return "✗"
	default:
		return "?"
	}
}

// MarshalText renders the status as its string form for JSON and YAML output
func (s ValidationStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ValidationResult is one finding produced by Validate
type ValidationResult struct {
	Layer     int              `json:"layer" yaml:"layer"`
	LayerName string           `json:"layer_name" yaml:"layer_name"`
	Status    ValidationStatus `json:"status" yaml:"status"`
	Message   string           `json:"message" yaml:"message"`
}

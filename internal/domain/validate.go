package domain

import "fmt"

type layerCheck struct {
	layer   int
	name    string
	present bool
	okMsg   string
	missing string
}

// Validate checks the four layers of a blueprint. It always returns one
// result for each layer, in order, followed by zero or more task quality
// warnings tagged with layer 4.
func Validate(bp *Blueprint) []ValidationResult {
	checks := []layerCheck{
		{1, "Intent Map", bp.HasIntent,
			"Has meaningful content",
			"Missing or incomplete - fill in PROJECT, ACTORS, CORE FLOWS, HARD PARTS"},
		{2, "Interface Contracts", bp.HasContracts,
			"Has interface definitions",
			"Missing or incomplete - define your data shapes, capabilities, and boundaries"},
		{3, "File Skeleton", bp.HasSkeleton,
			"Has file structure defined",
			"Missing or incomplete - map your interfaces to files on disk"},
	}

	results := make([]ValidationResult, 0, 4)
	for _, c := range checks {
		r := ValidationResult{Layer: c.layer, LayerName: c.name, Status: ValidationOk, Message: c.okMsg}
		if !c.present {
			r.Status = ValidationMissing
			r.Message = c.missing
		}
		results = append(results, r)
	}

	results = append(results, taskQueueResult(bp.Tasks))
	return append(results, taskQualityWarnings(bp.Tasks)...)
}

func taskQueueResult(q TaskQueue) ValidationResult {
	r := ValidationResult{Layer: 4, LayerName: "Task Queue"}
	active := len(q.InProgress) + len(q.NextUp)

	switch {
	case active > 0:
		r.Status = ValidationOk
		r.Message = fmt.Sprintf("%d active tasks", active)
	case len(q.Done) > 0 || len(q.Icebox) > 0:
		r.Status = ValidationWarning
		r.Message = "No active tasks - move something to IN PROGRESS or NEXT UP"
	default:
		r.Status = ValidationMissing
		r.Message = "No tasks defined - add tasks to guide implementation"
	}
	return r
}

func taskQualityWarnings(q TaskQueue) []ValidationResult {
	var results []ValidationResult
	warn := func(format string, args ...any) {
		results = append(results, ValidationResult{
			Layer:     4,
			LayerName: "Task Quality",
			Status:    ValidationWarning,
			Message:   fmt.Sprintf(format, args...),
		})
	}

	for _, task := range q.InProgress {
		if !task.HasContext() {
			warn("IN PROGRESS task '%s' missing Context", task.Text)
		}
		if !task.HasFiles() {
			warn("IN PROGRESS task '%s' missing Files", task.Text)
		}
	}
	for _, task := range q.NextUp {
		if !task.HasApproach() {
			warn("NEXT UP task '%s' missing Approach", task.Text)
		}
	}
	return results
}

// HasMissing reports whether any result is Missing
func HasMissing(results []ValidationResult) bool {
	for _, r := range results {
		if r.Status == ValidationMissing {
			return true
		}
	}
	return false
}

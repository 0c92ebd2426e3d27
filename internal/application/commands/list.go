package commands

import (
	"context"
	"fmt"

	"nira/internal/domain"
	"nira/internal/ports"
)

// ListTasksResult contains the tasks of a blueprint. Done tasks are not
// numbered; Active carries the numbering every other command uses.
type ListTasksResult struct {
	ProjectName string                `json:"project_name,omitempty" yaml:"project_name,omitempty"`
	Done        []domain.TaskItem     `json:"done" yaml:"done"`
	Active      []domain.NumberedTask `json:"active" yaml:"active"`
	Message     string                `json:"-" yaml:"-"`
}

// ListTasksCommand lists the Task Queue
type ListTasksCommand struct {
	repo ports.BlueprintRepository
}

// NewListTasksCommand creates a new ListTasksCommand
func NewListTasksCommand(repo ports.BlueprintRepository) *ListTasksCommand {
	return &ListTasksCommand{repo: repo}
}

// Execute runs the list command
func (c *ListTasksCommand) Execute(ctx context.Context) (*ListTasksResult, error) {
	_, bp, err := loadBlueprint(c.repo)
	if err != nil {
		return nil, err
	}

	active := bp.Tasks.Active()
	return &ListTasksResult{
		ProjectName: bp.ProjectName,
		Done:        bp.Tasks.Done,
		Active:      active,
		Message:     fmt.Sprintf("%d done, %d active", len(bp.Tasks.Done), len(active)),
	}, nil
}

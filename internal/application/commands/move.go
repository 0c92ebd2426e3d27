package commands

import (
	"context"
	"fmt"

	"nira/internal/application"
	"nira/internal/domain"
	"nira/internal/ports"
)

// MoveTaskResult contains the result of a move operation
type MoveTaskResult struct {
	Task    domain.TaskItem
	Number  int
	Target  domain.TaskStatus
	Message string
}

// MoveTaskCommand moves an active task to another Task Queue section
type MoveTaskCommand struct {
	repo    ports.BlueprintRepository
	journal ports.Journal
	Number  int
	Target  domain.TaskStatus
}

// NewMoveTaskCommand creates a new MoveTaskCommand. journal may be nil.
func NewMoveTaskCommand(repo ports.BlueprintRepository, journal ports.Journal, number int, target domain.TaskStatus) *MoveTaskCommand {
	return &MoveTaskCommand{
		repo:    repo,
		journal: journal,
		Number:  number,
		Target:  target,
	}
}

// Validate checks if the move operation is valid
func (c *MoveTaskCommand) Validate() error {
	if err := application.ValidateTaskNumber("taskNumber", c.Number); err != nil {
		return err
	}
	if c.Target.Heading() == "" {
		return &application.ValidationError{
			Field:   "target",
			Message: fmt.Sprintf("unknown target section: %d", int(c.Target)),
		}
	}
	return nil
}

// Execute runs the move command
func (c *MoveTaskCommand) Execute(ctx context.Context) (*MoveTaskResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	content, bp, err := loadBlueprint(c.repo)
	if err != nil {
		return nil, err
	}

	if _, ok := bp.Tasks.FindActive(c.Number); !ok {
		return nil, fmt.Errorf("task #%d not found (%d active tasks): %w",
			c.Number, len(bp.Tasks.Active()), application.ErrNotFound)
	}

	updated, task, err := domain.MoveTask(content, c.Number, c.Target)
	if err != nil {
		return nil, fmt.Errorf("failed to move task #%d: %w", c.Number, err)
	}

	summary := fmt.Sprintf("move #%d to %s: %s", c.Number, c.Target, task.Text)
	if err := commit(ctx, c.repo, c.journal, "move", summary, content, updated); err != nil {
		return nil, err
	}

	return &MoveTaskResult{
		Task:    task,
		Number:  c.Number,
		Target:  c.Target,
		Message: fmt.Sprintf("Moved task #%d to %s: %s", c.Number, c.Target.Label(), task.Text),
	}, nil
}

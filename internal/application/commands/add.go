package commands

import (
	"context"
	"fmt"
	"strings"

	"nira/internal/application"
	"nira/internal/domain"
	"nira/internal/ports"
)

// AddTaskResult contains the result of adding a task
type AddTaskResult struct {
	Task    domain.TaskItem
	Number  int
	Message string
}

// AddTaskCommand appends a task to the NEXT UP section
type AddTaskCommand struct {
	repo        ports.BlueprintRepository
	journal     ports.Journal
	Description string
}

// NewAddTaskCommand creates a new AddTaskCommand. journal may be nil.
func NewAddTaskCommand(repo ports.BlueprintRepository, journal ports.Journal, description string) *AddTaskCommand {
	return &AddTaskCommand{
		repo:        repo,
		journal:     journal,
		Description: description,
	}
}

// Validate checks if the add operation is valid
func (c *AddTaskCommand) Validate() error {
	if err := application.ValidateRequired("description", c.Description); err != nil {
		return err
	}
	return application.ValidateSingleLine("description", strings.TrimSpace(c.Description))
}

// Execute runs the add command
func (c *AddTaskCommand) Execute(ctx context.Context) (*AddTaskResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	content, bp, err := loadBlueprint(c.repo)
	if err != nil {
		return nil, err
	}

	description := strings.TrimSpace(c.Description)
	updated, err := domain.AddTask(content, description)
	if err != nil {
		return nil, fmt.Errorf("failed to add task: %w", err)
	}

	if err := commit(ctx, c.repo, c.journal, "add", "add: "+description, content, updated); err != nil {
		return nil, err
	}

	q := domain.Parse(updated, c.repo.Path()).Tasks
	pos := insertedAt(bp.Tasks.NextUp, q.NextUp)
	number := len(q.InProgress) + pos + 1
	task := domain.TaskItem{Text: description, Status: domain.StatusNextUp}
	if pos < len(q.NextUp) {
		task = q.NextUp[pos]
	}

	return &AddTaskResult{
		Task:    task,
		Number:  number,
		Message: fmt.Sprintf("Added task #%d: %s", number, task.Text),
	}, nil
}

// insertedAt returns the index in after of the task that is not in before.
// NEXT UP can hold subsections, so the new task is not always the last one.
func insertedAt(before, after []domain.TaskItem) int {
	for idx := range after {
		if idx >= len(before) || after[idx].Text != before[idx].Text {
			return idx
		}
	}
	return len(after) - 1
}

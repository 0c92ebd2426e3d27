package commands

import (
	"context"
	"fmt"

	"nira/internal/application"
	"nira/internal/domain"
	"nira/internal/ports"
)

// PromptResult contains a generated agent prompt
type PromptResult struct {
	Prompt  string
	Task    *domain.TaskItem
	Message string
}

// PromptCommand builds an AI-agent prompt from the blueprint. A zero
// TaskNumber produces the whole-blueprint prompt.
type PromptCommand struct {
	repo       ports.BlueprintRepository
	TaskNumber int
}

// NewPromptCommand creates a new PromptCommand
func NewPromptCommand(repo ports.BlueprintRepository, taskNumber int) *PromptCommand {
	return &PromptCommand{
		repo:       repo,
		TaskNumber: taskNumber,
	}
}

// Validate checks if the prompt request is valid
func (c *PromptCommand) Validate() error {
	if c.TaskNumber < 0 {
		return application.ValidateTaskNumber("taskNumber", c.TaskNumber)
	}
	return nil
}

// Execute runs the prompt command
func (c *PromptCommand) Execute(ctx context.Context) (*PromptResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	_, bp, err := loadBlueprint(c.repo)
	if err != nil {
		return nil, err
	}

	if c.TaskNumber == 0 {
		return &PromptResult{
			Prompt:  domain.GeneratePrompt(bp),
			Message: "Generated prompt for the whole blueprint",
		}, nil
	}

	prompt, ok := domain.GenerateTaskPrompt(bp, c.TaskNumber)
	if !ok {
		return nil, fmt.Errorf("task #%d not found (%d active tasks): %w",
			c.TaskNumber, len(bp.Tasks.Active()), application.ErrNotFound)
	}
	task, _ := bp.Tasks.FindActive(c.TaskNumber)

	return &PromptResult{
		Prompt:  prompt,
		Task:    &task,
		Message: fmt.Sprintf("Generated prompt for task #%d: %s", c.TaskNumber, task.Text),
	}, nil
}

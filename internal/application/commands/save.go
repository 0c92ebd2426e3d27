package commands

import (
	"context"
	"fmt"

	"nira/internal/domain"
	"nira/internal/ports"
)

// SaveResult contains the result of replacing the blueprint text
type SaveResult struct {
	Blueprint *domain.Blueprint
	Changed   bool
	Message   string
}

// SaveCommand replaces the whole blueprint with text from an editor
type SaveCommand struct {
	repo    ports.BlueprintRepository
	journal ports.Journal
	Content string
}

// NewSaveCommand creates a new SaveCommand. journal may be nil.
func NewSaveCommand(repo ports.BlueprintRepository, journal ports.Journal, content string) *SaveCommand {
	return &SaveCommand{
		repo:    repo,
		journal: journal,
		Content: content,
	}
}

// Execute runs the save command. Saving identical text is a no-op.
func (c *SaveCommand) Execute(ctx context.Context) (*SaveResult, error) {
	var previous string
	if c.repo.Exists() {
		var err error
		previous, err = c.repo.Read()
		if err != nil {
			return nil, fmt.Errorf("failed to read blueprint: %w", err)
		}
	}

	bp := domain.Parse(c.Content, c.repo.Path())
	if c.repo.Exists() && previous == c.Content {
		return &SaveResult{Blueprint: bp, Message: "No changes"}, nil
	}

	if err := commit(ctx, c.repo, c.journal, "save", "save from editor", previous, c.Content); err != nil {
		return nil, err
	}

	return &SaveResult{
		Blueprint: bp,
		Changed:   true,
		Message:   fmt.Sprintf("Saved %s", c.repo.Path()),
	}, nil
}

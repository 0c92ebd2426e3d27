package commands

import (
	"context"
	"fmt"

	"nira/internal/application"
	"nira/internal/domain"
	"nira/internal/ports"
)

// DefaultHistoryLimit is the number of revisions listed when no limit is given
const DefaultHistoryLimit = 20

func journalDisabled() error {
	return fmt.Errorf("revision journal is disabled: %w", application.ErrInvalidOperation)
}

// HistoryResult contains the recorded revisions of a blueprint
type HistoryResult struct {
	Revisions []domain.Revision
	Message   string
}

// HistoryCommand lists journal revisions for the current blueprint
type HistoryCommand struct {
	repo    ports.BlueprintRepository
	journal ports.Journal
	Limit   int
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(repo ports.BlueprintRepository, journal ports.Journal, limit int) *HistoryCommand {
	return &HistoryCommand{
		repo:    repo,
		journal: journal,
		Limit:   limit,
	}
}

// Execute runs the history command
func (c *HistoryCommand) Execute(ctx context.Context) (*HistoryResult, error) {
	if c.journal == nil {
		return nil, journalDisabled()
	}

	limit := c.Limit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	revs, err := c.journal.List(ctx, c.repo.Path(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list revisions: %w", err)
	}

	return &HistoryResult{
		Revisions: revs,
		Message:   fmt.Sprintf("%d revision(s) of %s", len(revs), c.repo.Path()),
	}, nil
}

// RestoreResult contains the result of restoring a revision
type RestoreResult struct {
	Revision *domain.Revision
	Message  string
}

// RestoreCommand writes a recorded revision back over the blueprint. The
// text being replaced is journaled first, so a restore can itself be undone.
type RestoreCommand struct {
	repo    ports.BlueprintRepository
	journal ports.Journal
	ID      int64
}

// NewRestoreCommand creates a new RestoreCommand
func NewRestoreCommand(repo ports.BlueprintRepository, journal ports.Journal, id int64) *RestoreCommand {
	return &RestoreCommand{
		repo:    repo,
		journal: journal,
		ID:      id,
	}
}

// Validate checks if the restore operation is valid
func (c *RestoreCommand) Validate() error {
	if c.ID < 1 {
		return &application.ValidationError{
			Field:   "revisionID",
			Message: fmt.Sprintf("revision ID must be 1 or greater, got: %d", c.ID),
		}
	}
	return nil
}

// Execute runs the restore command
func (c *RestoreCommand) Execute(ctx context.Context) (*RestoreResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.journal == nil {
		return nil, journalDisabled()
	}

	rev, err := c.journal.Get(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load revision %d: %w", c.ID, err)
	}
	if rev.Path != c.repo.Path() {
		return nil, &application.ValidationError{
			Field:   "revisionID",
			Message: fmt.Sprintf("revision %d belongs to %s, not %s", c.ID, rev.Path, c.repo.Path()),
		}
	}

	var current string
	if c.repo.Exists() {
		current, err = c.repo.Read()
		if err != nil {
			return nil, fmt.Errorf("failed to read blueprint: %w", err)
		}
	}

	summary := fmt.Sprintf("restore revision %d", c.ID)
	if err := commit(ctx, c.repo, c.journal, "restore", summary, current, rev.Content); err != nil {
		return nil, err
	}

	return &RestoreResult{
		Revision: rev,
		Message:  fmt.Sprintf("Restored revision %d (%s, %s)", rev.ID, rev.Op, rev.CreatedAt.Local().Format("2006-01-02 15:04")),
	}, nil
}

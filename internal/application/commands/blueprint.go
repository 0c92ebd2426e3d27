package commands

import (
	"context"
	"fmt"
	"time"

	"nira/internal/application"
	"nira/internal/domain"
	"nira/internal/ports"
)

// loadBlueprint reads and parses the blueprint behind repo
func loadBlueprint(repo ports.BlueprintRepository) (string, *domain.Blueprint, error) {
	if !repo.Exists() {
		return "", nil, &application.BlueprintError{
			Path:   repo.Path(),
			Reason: "not found (run 'nira init' first)",
		}
	}

	content, err := repo.Read()
	if err != nil {
		return "", nil, fmt.Errorf("failed to read blueprint: %w", err)
	}
	return content, domain.Parse(content, repo.Path()), nil
}

// commit replaces the blueprint text. When a journal is configured the text
// being replaced is recorded first; if that fails nothing is written.
func commit(ctx context.Context, repo ports.BlueprintRepository, journal ports.Journal, op, summary, before, after string) error {
	if journal != nil {
		rev := domain.Revision{
			Path:      repo.Path(),
			Op:        op,
			Summary:   summary,
			Content:   before,
			CreatedAt: time.Now().UTC(),
		}
		if _, err := journal.Record(ctx, rev); err != nil {
			return fmt.Errorf("failed to record revision: %w", err)
		}
	}

	if err := repo.Write(after); err != nil {
		return fmt.Errorf("failed to write blueprint: %w", err)
	}
	return nil
}

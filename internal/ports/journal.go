package ports

import (
	"context"

	"nira/internal/domain"
)

// Journal keeps the text a blueprint had before each mutation so that a
// change can be inspected or rolled back later.
type Journal interface {
	// Record stores a revision and returns its ID
	Record(ctx context.Context, rev domain.Revision) (int64, error)

	// List returns the most recent revisions for a blueprint path, newest first
	List(ctx context.Context, path string, limit int) ([]domain.Revision, error)

	// Get returns a single revision by ID
	Get(ctx context.Context, id int64) (*domain.Revision, error)

	Close() error
}

package commands

import (
	"context"
	"errors"
	"testing"

	"nira/internal/application"
	"nira/internal/domain"
)

func TestHistoryCommand_Execute(t *testing.T) {
	repo := newMemRepo(testBlueprint)
	journal := &memJournal{}

	ctx := context.Background()
	if _, err := NewAddTaskCommand(repo, journal, "One").Execute(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := NewMoveTaskCommand(repo, journal, 1, domain.StatusDone).Execute(ctx); err != nil {
		t.Fatal(err)
	}
	journal.revs = append(journal.revs, domain.Revision{ID: 99, Path: "/elsewhere/blueprint.md", Op: "add"})

	result, err := NewHistoryCommand(repo, journal, 0).Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Revisions) != 2 {
		t.Fatalf("expected 2 revisions for this path, got %d", len(result.Revisions))
	}
	if result.Revisions[0].Op != "move" || result.Revisions[1].Op != "add" {
		t.Errorf("expected newest first, got %q then %q", result.Revisions[0].Op, result.Revisions[1].Op)
	}
}

func TestHistoryCommand_JournalDisabled(t *testing.T) {
	_, err := NewHistoryCommand(newMemRepo(testBlueprint), nil, 5).Execute(context.Background())
	if !errors.Is(err, application.ErrInvalidOperation) {
		t.Errorf("expected ErrInvalidOperation, got %v", err)
	}
}

func TestRestoreCommand_Execute(t *testing.T) {
	repo := newMemRepo(testBlueprint)
	journal := &memJournal{}
	ctx := context.Background()

	if _, err := NewAddTaskCommand(repo, journal, "Regret").Execute(ctx); err != nil {
		t.Fatal(err)
	}
	afterAdd := repo.content

	result, err := NewRestoreCommand(repo, journal, 1).Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.content != testBlueprint {
		t.Error("expected original text restored")
	}
	if !contains(result.Message, "Restored revision 1") {
		t.Errorf("unexpected message %q", result.Message)
	}

	last := journal.revs[len(journal.revs)-1]
	if last.Op != "restore" || last.Content != afterAdd {
		t.Errorf("expected replaced text journaled before restore, got op=%q", last.Op)
	}
}

func TestRestoreCommand_Errors(t *testing.T) {
	journal := &memJournal{revs: []domain.Revision{{ID: 1, Path: "/other/blueprint.md", Content: "x"}}}

	tests := []struct {
		name    string
		id      int64
		journal *memJournal
		errMsg  string
	}{
		{"zero id", 0, journal, "revision ID must be 1 or greater"},
		{"unknown id", 5, journal, "revision 5 not found"},
		{"other blueprint", 1, journal, "belongs to /other/blueprint.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemRepo(testBlueprint)
			_, err := NewRestoreCommand(repo, tt.journal, tt.id).Execute(context.Background())
			if err == nil {
				t.Fatalf("expected error containing %q", tt.errMsg)
			}
			if !contains(err.Error(), tt.errMsg) {
				t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
			}
			if repo.writes != 0 {
				t.Error("expected no write on failure")
			}
		})
	}
}

package commands

import (
	"context"
	"errors"
	"testing"

	"nira/internal/application"
	"nira/internal/domain"
)

func TestAddTaskCommand_Validate(t *testing.T) {
	tests := []struct {
		name        string
		description string
		wantErr     bool
		errMsg      string
	}{
		{
			name:        "valid description",
			description: "Write tests",
			wantErr:     false,
		},
		{
			name:        "empty description",
			description: "",
			wantErr:     true,
			errMsg:      "description is required",
		},
		{
			name:        "whitespace description",
			description: "   ",
			wantErr:     true,
			errMsg:      "description is required",
		},
		{
			name:        "multi-line description",
			description: "first\nsecond",
			wantErr:     true,
			errMsg:      "single line",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &AddTaskCommand{Description: tt.description}
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAddTaskCommand_Execute(t *testing.T) {
	repo := newMemRepo(testBlueprint)
	journal := &memJournal{}

	result, err := NewAddTaskCommand(repo, journal, "  Write tests ").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Number != 3 {
		t.Errorf("expected new task to be #3, got #%d", result.Number)
	}
	if result.Task.Text != "Write tests" {
		t.Errorf("expected trimmed text, got %q", result.Task.Text)
	}
	if result.Message != "Added task #3: Write tests" {
		t.Errorf("unexpected message %q", result.Message)
	}
	if !contains(repo.content, "- [ ] **Write tests**\n") {
		t.Error("expected task written to the blueprint")
	}

	if len(journal.revs) != 1 {
		t.Fatalf("expected one journal revision, got %d", len(journal.revs))
	}
	rev := journal.revs[0]
	if rev.Op != "add" || rev.Content != testBlueprint || rev.Path != repo.Path() {
		t.Errorf("expected pre-write text recorded, got op=%q path=%q", rev.Op, rev.Path)
	}
}

func TestAddTaskCommand_NilJournal(t *testing.T) {
	repo := newMemRepo(testBlueprint)

	if _, err := NewAddTaskCommand(repo, nil, "Docs").Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.writes != 1 {
		t.Errorf("expected one write, got %d", repo.writes)
	}
}

func TestAddTaskCommand_JournalFailureBlocksWrite(t *testing.T) {
	repo := newMemRepo(testBlueprint)
	journal := &memJournal{recordErr: errDisk}

	_, err := NewAddTaskCommand(repo, journal, "Docs").Execute(context.Background())
	if !errors.Is(err, errDisk) {
		t.Fatalf("expected journal error, got %v", err)
	}
	if repo.writes != 0 || repo.content != testBlueprint {
		t.Error("expected blueprint untouched when the journal fails")
	}
}

func TestAddTaskCommand_MissingNextUp(t *testing.T) {
	repo := newMemRepo("# Blueprint: Bare\n\n### DONE\n")

	_, err := NewAddTaskCommand(repo, nil, "Docs").Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if repo.writes != 0 {
		t.Error("expected no write on failure")
	}
}

func TestAddTaskCommand_Execute_NextUpWithSubsection(t *testing.T) {
	content := "### NEXT UP\n- [ ] **A**\n\n#### later\n- [ ] **B**\n\n### ICEBOX\n"
	repo := newMemRepo(content)

	result, err := NewAddTaskCommand(repo, nil, "X").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Number != 2 || result.Task.Text != "X" {
		t.Errorf("expected #2 X, got #%d %q", result.Number, result.Task.Text)
	}
	if result.Message != "Added task #2: X" {
		t.Errorf("unexpected message %q", result.Message)
	}

	task, ok := domain.Parse(repo.content, "").Tasks.FindActive(result.Number)
	if !ok || task.Text != "X" {
		t.Errorf("expected active task #%d to be X, got %q", result.Number, task.Text)
	}
}

package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"nira/internal/domain"
)

func openTestJournal(t *testing.T, keep int) *Journal {
	t.Helper()

	j, err := Open(t.TempDir(), keep)
	if err != nil {
		t.Fatalf("failed to open journal: %v", err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

func TestJournal_RecordAndGet(t *testing.T) {
	j := openTestJournal(t, 0)
	ctx := context.Background()

	created := time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC)
	id, err := j.Record(ctx, domain.Revision{
		Path:      "/work/blueprint.md",
		Op:        "add",
		Summary:   "add: Write tests",
		Content:   "# Blueprint: Demo\n",
		CreatedAt: created,
	})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	rev, err := j.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if rev.ID != id || rev.Op != "add" || rev.Summary != "add: Write tests" {
		t.Errorf("unexpected revision %+v", rev)
	}
	if rev.Content != "# Blueprint: Demo\n" {
		t.Errorf("expected content round-trip, got %q", rev.Content)
	}
	if !rev.CreatedAt.Equal(created) {
		t.Errorf("expected created %v, got %v", created, rev.CreatedAt)
	}
}

func TestJournal_GetMissing(t *testing.T) {
	j := openTestJournal(t, 0)

	_, err := j.Get(context.Background(), 42)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestJournal_ListNewestFirstPerPath(t *testing.T) {
	j := openTestJournal(t, 0)
	ctx := context.Background()

	for _, rev := range []domain.Revision{
		{Path: "/a/blueprint.md", Op: "add", Content: "1"},
		{Path: "/b/blueprint.md", Op: "add", Content: "other"},
		{Path: "/a/blueprint.md", Op: "move", Content: "2"},
		{Path: "/a/blueprint.md", Op: "save", Content: "3"},
	} {
		if _, err := j.Record(ctx, rev); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	revs, err := j.List(ctx, "/a/blueprint.md", 2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(revs) != 2 {
		t.Fatalf("expected 2 revisions, got %d", len(revs))
	}
	if revs[0].Op != "save" || revs[1].Op != "move" {
		t.Errorf("expected save then move, got %q then %q", revs[0].Op, revs[1].Op)
	}
	if revs[0].Content != "" {
		t.Error("expected List to omit content")
	}
}

func TestJournal_PrunesBeyondKeep(t *testing.T) {
	j := openTestJournal(t, 3)
	ctx := context.Background()

	var ids []int64
	for i := 0; i < 5; i++ {
		id, err := j.Record(ctx, domain.Revision{Path: "/a/blueprint.md", Op: "save", Content: "x"})
		if err != nil {
			t.Fatalf("Record failed: %v", err)
		}
		ids = append(ids, id)
	}
	if _, err := j.Record(ctx, domain.Revision{Path: "/b/blueprint.md", Op: "save", Content: "y"}); err != nil {
		t.Fatal(err)
	}

	revs, err := j.List(ctx, "/a/blueprint.md", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(revs) != 3 {
		t.Fatalf("expected 3 kept revisions, got %d", len(revs))
	}
	if revs[2].ID != ids[2] {
		t.Errorf("expected oldest kept revision %d, got %d", ids[2], revs[2].ID)
	}
	if _, err := j.Get(ctx, ids[0]); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected pruned revision to be gone, got %v", err)
	}

	other, _ := j.List(ctx, "/b/blueprint.md", 10)
	if len(other) != 1 {
		t.Errorf("expected other path untouched, got %d", len(other))
	}
}

func TestDefaultDataDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	if got := DefaultDataDir(); got != filepath.Join("/tmp/xdg-data", "nira") {
		t.Errorf("expected XDG data dir, got %s", got)
	}
}

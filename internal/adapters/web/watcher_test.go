package web

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"nira/internal/logging"
)

func TestWatch_ReportsWritesToTheFileOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blueprint.md")
	if err := os.WriteFile(path, []byte("one\n"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, 20*time.Millisecond, logging.Discard(), func() {
			changes <- struct{}{}
		})
	}()

	// give the watcher time to register
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dir, "notes.md"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-changes:
		t.Fatal("expected sibling file to be ignored")
	case <-time.After(200 * time.Millisecond):
	}

	// several writes in a burst collapse into one callback
	for _, s := range []string{"two\n", "three\n", "four\n"} {
		if err := os.WriteFile(path, []byte(s), 0644); err != nil {
			t.Fatal(err)
		}
	}
	select {
	case <-changes:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a change notification")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("unexpected watch error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("expected Watch to return after cancel")
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone", "blueprint.md")
	err := Watch(context.Background(), path, DefaultDebounce, logging.Discard(), func() {})
	if err == nil {
		t.Error("expected error watching a missing directory")
	}
}

package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewRepository_ResolvesPaths(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		name string
		in   string
		want func() string
	}{
		{
			name: "empty uses default file name",
			in:   "",
			want: func() string { abs, _ := filepath.Abs(DefaultFileName); return abs },
		},
		{
			name: "tilde expands to home",
			in:   "~/plans/blueprint.md",
			want: func() string { return filepath.Join(home, "plans", "blueprint.md") },
		},
		{
			name: "relative becomes absolute",
			in:   "docs/plan.md",
			want: func() string { abs, _ := filepath.Abs("docs/plan.md"); return abs },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewRepository(tt.in).Path(); got != tt.want() {
				t.Errorf("expected %s, got %s", tt.want(), got)
			}
		})
	}
}

func TestRepository_ReadWrite(t *testing.T) {
	dir := t.TempDir()
	repo := NewRepository(filepath.Join(dir, "blueprint.md"))

	if repo.Exists() {
		t.Fatal("expected blueprint not to exist yet")
	}
	if _, err := repo.Read(); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}

	content := "# Blueprint: Demo\n\n### NEXT UP\n"
	if err := repo.Write(content); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !repo.Exists() {
		t.Fatal("expected blueprint to exist after write")
	}

	got, err := repo.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got != content {
		t.Errorf("expected %q, got %q", content, got)
	}
}

func TestRepository_WriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	repo := NewRepository(filepath.Join(dir, "blueprint.md"))

	for _, content := range []string{"one\n", "two\n"} {
		if err := repo.Write(content); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("unexpected leftover temp file %s", e.Name())
		}
	}
	if len(entries) != 1 {
		t.Errorf("expected only the blueprint in %s, got %d entries", dir, len(entries))
	}
}

func TestRepository_WriteKeepsPermissions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blueprint.md")
	if err := os.WriteFile(path, []byte("old\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := NewRepository(path).Write("new\n"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected mode 0600, got %v", info.Mode().Perm())
	}
}

func TestRepository_WriteCreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	repo := NewRepository(filepath.Join(dir, "nested", "plan", "blueprint.md"))

	if err := repo.Write("x\n"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if repo.Dir() != filepath.Join(dir, "nested", "plan") {
		t.Errorf("unexpected dir %s", repo.Dir())
	}
}

func TestRepository_DirectoryIsNotABlueprint(t *testing.T) {
	dir := t.TempDir()
	if NewRepository(dir).Exists() {
		t.Error("expected a directory not to count as an existing blueprint")
	}
}

package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFileName is the blueprint file looked up in the working directory
const DefaultFileName = "blueprint.md"

// Repository implements ports.BlueprintRepository for a single markdown file
type Repository struct {
	path string
}

// NewRepository creates a new filesystem repository. An empty path means
// DefaultFileName in the working directory.
func NewRepository(path string) *Repository {
	if path == "" {
		path = DefaultFileName
	}
	// Expand ~ to home directory
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return &Repository{path: path}
}

// Path returns the absolute location of the blueprint
func (r *Repository) Path() string {
	return r.path
}

// Dir returns the directory holding the blueprint
func (r *Repository) Dir() string {
	return filepath.Dir(r.path)
}

// Exists reports whether the blueprint is a regular file on disk
func (r *Repository) Exists() bool {
	info, err := os.Stat(r.path)
	return err == nil && info.Mode().IsRegular()
}

// Read returns the full text of the blueprint
func (r *Repository) Read() (string, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", r.path, err)
	}
	return string(data), nil
}

// Write replaces the blueprint by writing a sibling temp file and renaming it
// over the original, so readers never observe a half-written file.
func (r *Repository) Write(content string) error {
	dir := r.Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	perm := os.FileMode(0644)
	if info, err := os.Stat(r.path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tmpPath, r.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", r.path, err)
	}
	return nil
}

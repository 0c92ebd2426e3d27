package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"nira/internal/domain"
)

type memRepo struct {
	path     string
	content  string
	exists   bool
	writes   int
	writeErr error
}

func newMemRepo(content string) *memRepo {
	return &memRepo{path: "/work/blueprint.md", content: content, exists: true}
}

func (r *memRepo) Path() string { return r.path }
func (r *memRepo) Exists() bool { return r.exists }

func (r *memRepo) Read() (string, error) {
	if !r.exists {
		return "", fmt.Errorf("read %s: %w", r.path, os.ErrNotExist)
	}
	return r.content, nil
}

func (r *memRepo) Write(content string) error {
	if r.writeErr != nil {
		return r.writeErr
	}
	r.content = content
	r.exists = true
	r.writes++
	return nil
}

type memJournal struct {
	revs      []domain.Revision
	recordErr error
}

func (j *memJournal) Record(ctx context.Context, rev domain.Revision) (int64, error) {
	if j.recordErr != nil {
		return 0, j.recordErr
	}
	rev.ID = int64(len(j.revs) + 1)
	j.revs = append(j.revs, rev)
	return rev.ID, nil
}

func (j *memJournal) List(ctx context.Context, path string, limit int) ([]domain.Revision, error) {
	var out []domain.Revision
	for i := len(j.revs) - 1; i >= 0 && len(out) < limit; i-- {
		if j.revs[i].Path == path {
			out = append(out, j.revs[i])
		}
	}
	return out, nil
}

func (j *memJournal) Get(ctx context.Context, id int64) (*domain.Revision, error) {
	for _, rev := range j.revs {
		if rev.ID == id {
			r := rev
			return &r, nil
		}
	}
	return nil, &domain.NotFoundError{Kind: "revision", Name: fmt.Sprint(id)}
}

func (j *memJournal) Close() error { return nil }

var errDisk = errors.New("disk full")

const testBlueprint = `# Blueprint: Demo

## Layer 1: Intent Map

- **ONE-LINE:** Tracks plans.

## Layer 2: Interface Contracts

Blueprint holds four layers.

## Layer 3: File Skeleton

- main.go

## Layer 4: Task Queue

### DONE ✓

- [x] Scaffold

### IN PROGRESS →

- [ ] **Parser**
  - **Context:** started
  - **Blocked?** no
  - **Files:** parser.go

### NEXT UP

- [ ] **Validator**
  - **Depends on:** parser
  - **Files:** validate.go
  - **Approach:** check each layer

### ICEBOX (later)

- [ ] Web UI
`

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

package mcp

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"nira/internal/adapters/filesystem"
)

const toolBlueprint = `# Blueprint: Tools

## Layer 1: Intent Map

Serves plans to agents.

## Layer 2: Interface Contracts

Tool handlers return text.

## Layer 3: File Skeleton

- read.go

## Layer 4: Task Queue

### DONE ✓

### IN PROGRESS →

### NEXT UP

- [ ] **Wire tools**
  - **Depends on:** nothing
  - **Files:** read.go
  - **Approach:** reuse commands

### ICEBOX (later)
`

func newTestRepo(t *testing.T) *filesystem.Repository {
	t.Helper()
	repo := filesystem.NewRepository(filepath.Join(t.TempDir(), "blueprint.md"))
	if err := repo.Write(toolBlueprint); err != nil {
		t.Fatal(err)
	}
	return repo
}

func call(t *testing.T, h server.ToolHandlerFunc, args map[string]any) (string, bool) {
	t.Helper()

	req := mcp.CallToolRequest{}
	req.Params.Arguments = args

	result, err := h(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned protocol error: %v", err)
	}
	if len(result.Content) == 0 {
		t.Fatal("expected content in tool result")
	}

	var text string
	switch c := result.Content[0].(type) {
	case mcp.TextContent:
		text = c.Text
	case *mcp.TextContent:
		text = c.Text
	default:
		t.Fatalf("unexpected content type %T", c)
	}
	return text, result.IsError
}

func TestReadTools(t *testing.T) {
	repo := newTestRepo(t)

	tests := []struct {
		name    string
		handler server.ToolHandlerFunc
		args    map[string]any
		want    []string
		isError bool
	}{
		{
			name:    "validate",
			handler: validateHandler(repo),
			want:    []string{"✓ Layer 1 (Intent Map)", "1 active tasks", "Blueprint is complete"},
		},
		{
			name:    "list tasks",
			handler: listTasksHandler(repo),
			want:    []string{" 1 ⋯ Wire tools [next-up]"},
		},
		{
			name:    "read blueprint",
			handler: readBlueprintHandler(repo),
			want:    []string{toolBlueprint},
		},
		{
			name:    "prompt for a task",
			handler: promptHandler(repo),
			args:    map[string]any{"task_number": float64(1)},
			want:    []string{"Task #1: Wire tools", "Approach: reuse commands"},
		},
		{
			name:    "prompt for a missing task",
			handler: promptHandler(repo),
			args:    map[string]any{"task_number": float64(4)},
			want:    []string{"task #4 not found"},
			isError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, isError := call(t, tt.handler, tt.args)
			if isError != tt.isError {
				t.Errorf("expected isError=%v, got %v (%s)", tt.isError, isError, text)
			}
			for _, want := range tt.want {
				if !strings.Contains(text, want) {
					t.Errorf("expected %q in:\n%s", want, text)
				}
			}
		})
	}
}

func TestWriteTools(t *testing.T) {
	repo := newTestRepo(t)

	text, isError := call(t, addTaskHandler(repo, nil), map[string]any{"description": "Document tools"})
	if isError || text != "Added task #2: Document tools" {
		t.Fatalf("unexpected add result %q (error=%v)", text, isError)
	}

	text, isError = call(t, moveTaskHandler(repo, nil), map[string]any{"task_number": float64(1), "target": "in-progress"})
	if isError || text != "Moved task #1 to IN PROGRESS: Wire tools" {
		t.Fatalf("unexpected move result %q (error=%v)", text, isError)
	}

	content, err := repo.Read()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(content, "### IN PROGRESS →\n\n- [ ] **Wire tools**\n  - **Context:**\n") {
		t.Errorf("expected task rendered in IN PROGRESS, got:\n%s", content)
	}
}

func TestWriteTools_Errors(t *testing.T) {
	repo := newTestRepo(t)

	tests := []struct {
		name    string
		handler server.ToolHandlerFunc
		args    map[string]any
		want    string
	}{
		{"add without description", addTaskHandler(repo, nil), map[string]any{}, "description is required"},
		{"move to unknown section", moveTaskHandler(repo, nil), map[string]any{"task_number": float64(1), "target": "archive"}, "unknown task status"},
		{"move without number", moveTaskHandler(repo, nil), map[string]any{"target": "done"}, "task_number is required"},
		{"move unknown task", moveTaskHandler(repo, nil), map[string]any{"task_number": float64(9), "target": "done"}, "task #9 not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, isError := call(t, tt.handler, tt.args)
			if !isError {
				t.Fatalf("expected tool error, got %q", text)
			}
			if !strings.Contains(text, tt.want) {
				t.Errorf("expected %q in %q", tt.want, text)
			}
		})
	}
}

func TestNewServer_RegistersTools(t *testing.T) {
	s := NewServer("test", newTestRepo(t), nil)
	if s == nil {
		t.Fatal("expected server")
	}
}

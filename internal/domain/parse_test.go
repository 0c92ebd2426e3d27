package domain

import (
	"strings"
	"testing"
	"time"
)

const filledBlueprint = `# Blueprint: Nira

## Layer 1: Intent Map

- **ONE-LINE:** Keeps a four-layer plan next to the code.

## Layer 2: Interface Contracts

| Name | Type |
|------|------|
| Blueprint | Data |

Blueprint carries the parsed layers.

## Layer 3: File Skeleton

- internal/domain ← CORE

## Layer 4: Task Queue

### DONE ✓

- [x] Scaffold repo

### IN PROGRESS →

- [ ] **Write parser**
  - **Context:** section locator done
  - **Blocked?** no
  - **Files:** internal/domain/section.go

### NEXT UP

- [ ] **Write validator**
  - **Depends on:** parser
  - **Files:** internal/domain/validate.go
  - **Approach:** one result per layer

- [ ] **Write mutator**

### ICEBOX (later)

- [ ] Web editor
`

func TestParse(t *testing.T) {
	bp := Parse(filledBlueprint, "blueprint.md")

	if bp.ProjectName != "Nira" {
		t.Errorf("expected project name Nira, got %q", bp.ProjectName)
	}
	if bp.Path != "blueprint.md" {
		t.Errorf("expected path to be kept, got %q", bp.Path)
	}
	if !bp.HasIntent || !bp.HasContracts || !bp.HasSkeleton {
		t.Errorf("expected all layers present, got intent=%v contracts=%v skeleton=%v",
			bp.HasIntent, bp.HasContracts, bp.HasSkeleton)
	}

	q := bp.Tasks
	if len(q.Done) != 1 || len(q.InProgress) != 1 || len(q.NextUp) != 2 || len(q.Icebox) != 1 {
		t.Fatalf("unexpected queue sizes: done=%d progress=%d next=%d ice=%d",
			len(q.Done), len(q.InProgress), len(q.NextUp), len(q.Icebox))
	}
	if q.NextUp[0].Approach != "one result per layer" {
		t.Errorf("unexpected approach %q", q.NextUp[0].Approach)
	}
	if q.Icebox[0].Status != StatusIcebox {
		t.Errorf("expected icebox status, got %v", q.Icebox[0].Status)
	}
}

func TestParse_IsDeterministic(t *testing.T) {
	a := Parse(filledBlueprint, "").Tasks.Active()
	b := Parse(filledBlueprint, "").Tasks.Active()

	if len(a) != len(b) {
		t.Fatalf("expected identical numbering, got %d vs %d tasks", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("position %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	bp := Parse("", "")

	if bp.HasIntent || bp.HasContracts || bp.HasSkeleton {
		t.Error("expected no layers in an empty document")
	}
	if bp.Tasks.Len() != 0 {
		t.Errorf("expected no tasks, got %d", bp.Tasks.Len())
	}
	if bp.ProjectName != "" {
		t.Errorf("expected no project name, got %q", bp.ProjectName)
	}
}

func TestValidate_PlaceholderTemplateIsAllMissing(t *testing.T) {
	content := RenderTemplate("", "Demo", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))
	results := Validate(Parse(content, ""))

	if len(results) != 4 {
		t.Fatalf("expected exactly 4 results, got %d: %+v", len(results), results)
	}
	for i, r := range results {
		if r.Layer != i+1 {
			t.Errorf("result %d: expected layer %d, got %d", i, i+1, r.Layer)
		}
		if r.Status != ValidationMissing {
			t.Errorf("layer %d: expected Missing, got %v (%s)", r.Layer, r.Status, r.Message)
		}
	}
	if !HasMissing(results) {
		t.Error("expected HasMissing to be true")
	}
}

func TestValidate_FilledBlueprint(t *testing.T) {
	results := Validate(Parse(filledBlueprint, ""))

	// 4 layer results + one NEXT UP task without Approach
	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %d: %+v", len(results), results)
	}
	for _, r := range results[:4] {
		if r.Status != ValidationOk {
			t.Errorf("layer %d: expected Ok, got %v (%s)", r.Layer, r.Status, r.Message)
		}
	}
	if results[3].Message != "3 active tasks" {
		t.Errorf("unexpected task queue message %q", results[3].Message)
	}
	advisory := results[4]
	if advisory.Layer != 4 || advisory.Status != ValidationWarning || !strings.Contains(advisory.Message, "Write mutator") {
		t.Errorf("unexpected advisory %+v", advisory)
	}
	if HasMissing(results) {
		t.Error("expected no Missing results")
	}
}

func TestValidate_TaskQueueStates(t *testing.T) {
	tests := []struct {
		name  string
		tasks TaskQueue
		want  ValidationStatus
	}{
		{"empty queue", TaskQueue{}, ValidationMissing},
		{"only done", TaskQueue{Done: []TaskItem{{Text: "a"}}}, ValidationWarning},
		{"only icebox", TaskQueue{Icebox: []TaskItem{{Text: "a"}}}, ValidationWarning},
		{"next up", TaskQueue{NextUp: []TaskItem{{Text: "a", Approach: "x"}}}, ValidationOk},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := Validate(&Blueprint{Tasks: tt.tasks})
			if got := results[3].Status; got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestValidate_InProgressAdvisories(t *testing.T) {
	bp := &Blueprint{
		HasIntent:    true,
		HasContracts: true,
		HasSkeleton:  true,
		Tasks: TaskQueue{
			InProgress: []TaskItem{{Text: "Bare task", Status: StatusInProgress}},
		},
	}

	results := Validate(bp)
	if len(results) != 6 {
		t.Fatalf("expected 4 layer results + 2 advisories, got %d", len(results))
	}
	if results[3].Status != ValidationOk {
		t.Errorf("expected task queue Ok, got %v", results[3].Status)
	}
	for _, r := range results[4:] {
		if r.Status != ValidationWarning || r.Layer != 4 {
			t.Errorf("expected layer 4 warning, got %+v", r)
		}
	}
	if !strings.Contains(results[4].Message, "missing Context") || !strings.Contains(results[5].Message, "missing Files") {
		t.Errorf("unexpected advisory messages: %q, %q", results[4].Message, results[5].Message)
	}
}

func TestRenderTemplate(t *testing.T) {
	content := RenderTemplate("", "", time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC))

	if !strings.HasPrefix(content, "# Blueprint: MyProject\n") {
		t.Errorf("expected default project name, got %q", strings.SplitN(content, "\n", 2)[0])
	}
	if !strings.Contains(content, "**Started:** 2026-10-19") {
		t.Error("expected date to be substituted")
	}
	if strings.Contains(content, "{DATE}") || strings.Contains(content, "{PROJECT_NAME}") {
		t.Error("expected no unreplaced placeholders")
	}
	if Parse(content, "").ProjectName != "MyProject" {
		t.Error("expected rendered template to parse its project name")
	}
}

func TestGeneratePrompt(t *testing.T) {
	bp := Parse(filledBlueprint, "")

	full := GeneratePrompt(bp)
	if !strings.Contains(full, "<blueprint>\n"+filledBlueprint) || !strings.Contains(full, "<rules>") {
		t.Error("expected prompt to embed the blueprint and rules")
	}

	task, ok := GenerateTaskPrompt(bp, 1)
	if !ok {
		t.Fatal("expected task #1 to resolve")
	}
	for _, want := range []string{"Task #1: Write parser", "Context: section locator done", "Files: internal/domain/section.go"} {
		if !strings.Contains(task, want) {
			t.Errorf("expected task prompt to contain %q", want)
		}
	}

	if _, ok := GenerateTaskPrompt(bp, 99); ok {
		t.Error("expected unknown task number to fail")
	}
}

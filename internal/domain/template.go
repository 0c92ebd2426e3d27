package domain

import (
	"strings"
	"time"
)

// DefaultTemplate is the blueprint written by `nira init`. Every layer holds
// only placeholders so that a fresh blueprint validates as incomplete.
const DefaultTemplate = `# Blueprint: {PROJECT_NAME}

> **Started:** {DATE}
> **Last updated:** {DATE}
> **Status:** Planning

---

## Layer 1: Intent Map

<!-- Who uses this system, what happens step by step, and what makes it hard. -->

- **ONE-LINE:** [what it does] (one sentence, for a human)
- **ACTORS:** [actor 1], [actor 2]
- **CORE FLOW 1:** [Actor] does [action] → [what happens] → [end result]
- **CORE FLOW 2:** [Actor] does [action] → [what happens] → [end result]
- **HARD PARTS:** [hard part 1], [hard part 2]
- **NON-GOALS:** [non-goal 1]

---

## Layer 2: Interface Contracts

<!-- For each interface pick a type: A = Data Shape, B = Capability, C = Boundary. -->

| Name | Type | Fields / Methods | Rules |
|------|------|------------------|-------|
| | | | |

- [field]: [type] - [meaning]
- [method]([args]) -> [result] - [what it does]
- Connection diagram: [replace with your diagram]

---

## Layer 3: File Skeleton

<!-- Tag every file: ENTRY, CORE, [Data: Name], [Capability: Name] or [Boundary: Name]. -->

- [name]/main ← ENTRY: [what it does]
- [name]/types ← [Data: all shared types]

---

## Layer 4: Task Queue

<!-- Every task names its FILES. IN PROGRESS tasks carry a CONTEXT, NEXT UP tasks an APPROACH. -->
<!-- Update this before you stop working. -->

### DONE ✓

### IN PROGRESS →

### NEXT UP

### ICEBOX (later)
`

// RenderTemplate substitutes the project name and date into a template.
// An empty template falls back to DefaultTemplate.
func RenderTemplate(template, projectName string, now time.Time) string {
	if template == "" {
		template = DefaultTemplate
	}
	if strings.TrimSpace(projectName) == "" {
		projectName = "MyProject"
	}
	r := strings.NewReplacer(
		"{PROJECT_NAME}", projectName,
		"{DATE}", now.Format("2006-01-02"),
	)
	return r.Replace(template)
}

package domain

import (
	"fmt"
	"strings"
)

// GeneratePrompt wraps the whole blueprint in instructions for an AI coding
// assistant.
func GeneratePrompt(bp *Blueprint) string {
	var b strings.Builder

	b.WriteString("You are implementing code for this project. Follow these rules:\n\n")
	writeBlueprint(&b, bp)

	b.WriteString("<rules>\n")
	b.WriteString("1. Read the Blueprint above carefully before writing any code.\n")
	b.WriteString("2. Follow the interface contracts exactly: types, method signatures, rules.\n")
	b.WriteString("3. Place files according to the File Skeleton. Do not invent new directories.\n")
	b.WriteString("4. If you need a new type, tell me and I'll add it to Layer 2 first.\n")
	b.WriteString("5. If you need to change an interface, STOP and explain why before changing it.\n")
	b.WriteString("6. When you finish a task, tell me:\n")
	b.WriteString("   - What files you created/modified\n")
	b.WriteString("   - Any new types or interfaces you introduced\n")
	b.WriteString("   - What should be updated in the Blueprint\n")
	b.WriteString("7. Work on ONE task from the Task Queue at a time.\n")
	b.WriteString("</rules>\n")

	return b.String()
}

// GenerateTaskPrompt focuses the prompt on one active task. It returns false
// when number does not resolve to an active task.
func GenerateTaskPrompt(bp *Blueprint, number int) (string, bool) {
	task, ok := bp.Tasks.FindActive(number)
	if !ok {
		return "", false
	}

	var b strings.Builder

	b.WriteString("You are implementing a specific task for this project.\n\n")
	writeBlueprint(&b, bp)

	b.WriteString("<current_task>\n")
	fmt.Fprintf(&b, "Task #%d: %s\n\n", number, task.Text)
	if task.HasContext() {
		fmt.Fprintf(&b, "Context: %s\n\n", task.Context)
	}
	if task.HasFiles() {
		fmt.Fprintf(&b, "Files: %s\n\n", task.Files)
	}
	if task.HasApproach() {
		fmt.Fprintf(&b, "Approach: %s\n\n", task.Approach)
	}
	b.WriteString("</current_task>\n\n")

	b.WriteString("<rules>\n")
	b.WriteString("1. Read the Blueprint and understand the full context.\n")
	b.WriteString("2. Focus ONLY on the current task specified above.\n")
	b.WriteString("3. Follow the interface contracts from Layer 2 exactly.\n")
	b.WriteString("4. Place files according to Layer 3 (File Skeleton).\n")
	b.WriteString("5. If you need to change an interface, STOP and explain why.\n")
	b.WriteString("6. When done, report:\n")
	b.WriteString("   - What files you created/modified\n")
	b.WriteString("   - Any new types or interfaces\n")
	b.WriteString("   - What to update in the Blueprint\n")
	b.WriteString("</rules>\n")

	return b.String(), true
}

func writeBlueprint(b *strings.Builder, bp *Blueprint) {
	b.WriteString("<blueprint>\n")
	b.WriteString(bp.Raw)
	b.WriteString("\n</blueprint>\n\n")
}

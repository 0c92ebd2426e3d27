package domain

import (
	"fmt"
	"strings"
)

// lineEnding records how a document terminates its lines so an edit can
// write them back the same way.
type lineEnding struct {
	eol      string
	trailing bool
}

// splitLines splits content into lines, remembering the line terminator and
// whether the content ended with one so joinLines can restore it exactly.
func splitLines(content string) ([]string, lineEnding) {
	le := lineEnding{eol: "\n"}
	if strings.Contains(content, "\r\n") {
		le.eol = "\r\n"
	}
	le.trailing = strings.HasSuffix(content, "\n")
	if le.trailing {
		content = content[:len(content)-1]
	}
	lines := strings.Split(content, "\n")
	if le.eol == "\r\n" {
		for idx, line := range lines {
			lines[idx] = strings.TrimSuffix(line, "\r")
		}
	}
	return lines, le
}

func joinLines(lines []string, le lineEnding) string {
	out := strings.Join(lines, le.eol)
	if le.trailing {
		out += le.eol
	}
	return out
}

func splice(lines []string, at int, insert []string) []string {
	out := make([]string, 0, len(lines)+len(insert))
	out = append(out, lines[:at]...)
	out = append(out, insert...)
	return append(out, lines[at:]...)
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// findHeadingLine returns the index of the first line whose trimmed text
// starts with heading, or -1.
func findHeadingLine(lines []string, heading string) int {
	for idx, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), heading) {
			return idx
		}
	}
	return -1
}

func metaLine(label, value string) string {
	return strings.TrimRight("  "+label+" "+value, " ")
}

// singleLine folds a free-text description onto one line
func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}

// AddTask returns content with a new task appended to the end of the NEXT UP
// section. The section is never created; a missing NEXT UP heading is an
// ErrNotFound.
func AddTask(content, description string) (string, error) {
	lines, le := splitLines(content)

	heading := StatusNextUp.Heading()
	h := findHeadingLine(lines, heading)
	if h < 0 {
		return "", &NotFoundError{Kind: "section", Name: fmt.Sprintf("'%s'", heading)}
	}

	insert := h + 1
	for insert < len(lines) && isBlank(lines[insert]) {
		insert++
	}
	for insert < len(lines) && !isHeading(lines[insert]) {
		insert++
	}

	var block []string
	if !isBlank(lines[insert-1]) {
		block = append(block, "")
	}
	block = append(block,
		"- [ ] **"+singleLine(description)+"**",
		metaLine(labelDependsOn, ""),
		metaLine(labelFiles, ""),
		metaLine(labelApproach, ""),
	)
	if insert < len(lines) {
		block = append(block, "")
	}

	return joinLines(splice(lines, insert, block), le), nil
}

// MoveTask relocates the active task with the given number to the target
// section. The task line is found by its description text, removed together
// with its metadata block, re-rendered in the target section's format and
// inserted right below the target heading. The returned task is the one
// that was moved, as parsed before the edit.
func MoveTask(content string, number int, target TaskStatus) (string, TaskItem, error) {
	bp := Parse(content, "")
	task, ok := bp.Tasks.FindActive(number)
	if !ok {
		return "", TaskItem{}, &NotFoundError{Kind: "task", Name: fmt.Sprintf("#%d", number)}
	}

	lines, le := splitLines(content)

	start := findTaskLine(lines, task.Text)
	if start < 0 {
		return "", task, &NotFoundError{Kind: "task", Name: fmt.Sprintf("'%s' in file", task.Text)}
	}
	end := taskBlockEnd(lines, start)

	remaining := make([]string, 0, len(lines)-(end-start))
	remaining = append(remaining, lines[:start]...)
	remaining = append(remaining, lines[end:]...)

	heading := target.Heading()
	dest := findHeadingLine(remaining, heading)
	if dest < 0 {
		return "", task, &NotFoundError{Kind: "section", Name: fmt.Sprintf("'%s'", heading)}
	}

	insert := dest + 1
	for insert < len(remaining) && isBlank(remaining[insert]) {
		insert++
	}

	var block []string
	if insert == dest+1 {
		block = append(block, "")
	}
	block = append(block, RenderTask(task, target)...)
	if insert < len(remaining) {
		block = append(block, "")
	}

	return joinLines(splice(remaining, insert, block), le), task, nil
}

// findTaskLine returns the first checkbox line whose remainder contains text.
// Two tasks sharing description text are indistinguishable here.
func findTaskLine(lines []string, text string) int {
	for idx, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if isCheckboxLine(trimmed) && strings.Contains(trimmed[len("- ["):], text) {
			return idx
		}
	}
	return -1
}

// taskBlockEnd returns the index just past the metadata block that follows
// the task line at start.
func taskBlockEnd(lines []string, start int) int {
	end := start + 1
	for end < len(lines) {
		next := strings.TrimLeft(lines[end], " \t")
		if isCheckboxLine(next) || isHeading(next) {
			break
		}
		if isBlank(next) || strings.HasPrefix(next, "- ") {
			end++
			continue
		}
		break
	}
	return end
}

// RenderTask formats a task the way the target section expects it
func RenderTask(task TaskItem, target TaskStatus) []string {
	switch target {
	case StatusDone:
		return []string{"- [x] " + task.Text}
	case StatusInProgress:
		return []string{
			"- [ ] **" + task.Text + "**",
			metaLine(labelContext, task.Context),
			metaLine(labelBlocked, "no"),
			metaLine(labelFiles, task.Files),
		}
	case StatusNextUp:
		return []string{
			"- [ ] **" + task.Text + "**",
			metaLine(labelDependsOn, task.Approach),
			metaLine(labelFiles, task.Files),
			metaLine(labelApproach, ""),
		}
	default:
		return []string{"- [ ] " + task.Text}
	}
}

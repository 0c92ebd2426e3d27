package domain

import (
	"regexp"
	"strings"
)

var taskLineRegex = regexp.MustCompile(`^- \[([ x])\]\s+(.+)$`)

// Metadata labels recognised under a task line
const (
	labelContext   = "- **Context:**"
	labelFiles     = "- **Files:**"
	labelApproach  = "- **Approach:**"
	labelDependsOn = "- **Depends on:**"
	labelBlocked   = "- **Blocked?**"
)

// isCheckboxLine reports whether a left-trimmed line opens a checkbox entry.
// It is deliberately looser than taskLineRegex so that block boundaries
// agree between parsing and removal.
func isCheckboxLine(trimmedLeft string) bool {
	return strings.HasPrefix(trimmedLeft, "- [")
}

// parseTaskLine extracts the description from a task line, stripping bold
// markers from both ends.
func parseTaskLine(line string) (string, bool) {
	caps := taskLineRegex.FindStringSubmatch(strings.TrimLeft(line, " \t"))
	if caps == nil {
		return "", false
	}
	text := strings.TrimSpace(caps[2])
	for strings.HasPrefix(text, "**") {
		text = text[2:]
	}
	for strings.HasSuffix(text, "**") {
		text = text[:len(text)-2]
	}
	return text, true
}

// ParseTaskList extracts the tasks of one Task Queue section. Every task gets
// the given status regardless of its checkbox state.
func ParseTaskList(section string, status TaskStatus) []TaskItem {
	var tasks []TaskItem
	lines := strings.Split(section, "\n")

	i := 0
	for i < len(lines) {
		text, ok := parseTaskLine(lines[i])
		if !ok {
			i++
			continue
		}

		task := TaskItem{Text: text, Status: status, Line: i + 1}
		j := i + 1
		for j < len(lines) {
			meta := strings.TrimLeft(lines[j], " \t")
			if isCheckboxLine(meta) || isHeading(meta) {
				break
			}
			if strings.TrimSpace(meta) == "" {
				if j+1 < len(lines) && isCheckboxLine(strings.TrimLeft(lines[j+1], " \t")) {
					break
				}
				j++
				continue
			}
			applyMetadata(&task, meta)
			j++
		}

		tasks = append(tasks, task)
		i = j
	}
	return tasks
}

// applyMetadata records a "- **Label:** value" line on task. Empty values
// leave the field unset. "Depends on" shares the Approach slot and only
// fills it when nothing is there yet.
func applyMetadata(task *TaskItem, meta string) {
	if rest, ok := strings.CutPrefix(meta, labelContext); ok {
		if v := strings.TrimSpace(rest); v != "" {
			task.Context = v
		}
	} else if rest, ok := strings.CutPrefix(meta, labelFiles); ok {
		if v := strings.TrimSpace(rest); v != "" {
			task.Files = v
		}
	} else if rest, ok := strings.CutPrefix(meta, labelApproach); ok {
		if v := strings.TrimSpace(rest); v != "" {
			task.Approach = v
		}
	} else if rest, ok := strings.CutPrefix(meta, labelDependsOn); ok {
		if v := strings.TrimSpace(rest); v != "" && task.Approach == "" {
			task.Approach = "Depends on: " + v
		}
	}
}

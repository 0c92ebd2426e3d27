package domain

import "strings"

// placeholderMarkers are the template prompts that do not count as content
var placeholderMarkers = []string{
	"[name]",
	"[what it does]",
	"[actor",
	"[action]",
	"[hard part",
	"[non-goal",
	"[field",
	"[method",
	"replace with your diagram",
	"todo",
}

// headingLevel returns the number of leading '#' characters of a trimmed
// line, or 0 if the line is not a heading.
func headingLevel(line string) int {
	trimmed := strings.TrimSpace(line)
	level := 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	return level
}

func isHeading(line string) bool {
	return headingLevel(line) > 0
}

// lineStarts returns the byte offset at which every line of content begins.
// The last entry is always len(content).
func lineStarts(content string) []int {
	starts := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	if starts[len(starts)-1] != len(content) {
		starts = append(starts, len(content))
	}
	return starts
}

// FindSection locates the body of the first heading whose text contains
// heading (case-insensitive). The returned range [start, end) excludes the
// heading line and runs up to the next heading of the same or a higher level.
func FindSection(content, heading string) (start, end int, ok bool) {
	target := strings.ToLower(heading)
	starts := lineStarts(content)
	lines := strings.Split(content, "\n")

	headingIdx, level := -1, 0
	for idx, line := range lines {
		if !isHeading(line) {
			continue
		}
		if strings.Contains(strings.ToLower(strings.TrimSpace(line)), target) {
			headingIdx = idx
			level = headingLevel(line)
			break
		}
	}
	if headingIdx < 0 {
		return 0, 0, false
	}

	start = len(content)
	if headingIdx+1 < len(starts) {
		start = starts[headingIdx+1]
	}

	end = len(content)
	for idx := headingIdx + 1; idx < len(lines); idx++ {
		if l := headingLevel(lines[idx]); l > 0 && l <= level {
			end = starts[idx]
			break
		}
	}
	return start, end, true
}

// SectionBody returns the text of the section owned by heading
func SectionBody(content, heading string) (string, bool) {
	start, end, ok := FindSection(content, heading)
	if !ok {
		return "", false
	}
	return content[start:end], true
}

// HasContent reports whether a section body holds anything besides blank
// lines, comment delimiters, tables and template placeholders.
func HasContent(section string) bool {
	for _, line := range strings.Split(section, "\n") {
		trimmed := strings.TrimSpace(line)
		if skipForContent(trimmed) {
			continue
		}
		if !isPlaceholder(trimmed) {
			return true
		}
	}
	return false
}

func skipForContent(trimmed string) bool {
	switch {
	case trimmed == "":
		return true
	case strings.HasPrefix(trimmed, "<!--"), strings.HasPrefix(trimmed, "-->"):
		return true
	case strings.HasPrefix(trimmed, "|"):
		return true
	case strings.Trim(trimmed, "- |") == "":
		return true
	}
	return false
}

func isPlaceholder(trimmed string) bool {
	lower := strings.ToLower(trimmed)
	for _, marker := range placeholderMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

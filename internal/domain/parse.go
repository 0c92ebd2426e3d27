package domain

import (
	"regexp"
	"strings"
)

// Layer headings as written by the blueprint template
const (
	LayerIntentHeading    = "Layer 1: Intent Map"
	LayerContractsHeading = "Layer 2: Interface Contracts"
	LayerSkeletonHeading  = "Layer 3: File Skeleton"
	LayerTasksHeading     = "Layer 4: Task Queue"
)

var projectNameRegex = regexp.MustCompile(`(?i)^#\s+Blueprint:\s+(.+)$`)

// Parse derives a Blueprint from raw text. It never fails: anything missing
// from the document simply comes back empty or false.
func Parse(content, path string) *Blueprint {
	return &Blueprint{
		Raw:          content,
		Path:         path,
		HasIntent:    layerHasContent(content, LayerIntentHeading),
		HasContracts: layerHasContent(content, LayerContractsHeading),
		HasSkeleton:  layerHasContent(content, LayerSkeletonHeading),
		Tasks:        parseTasks(content),
		ProjectName:  extractProjectName(content),
	}
}

func extractProjectName(content string) string {
	for _, line := range strings.Split(content, "\n") {
		if caps := projectNameRegex.FindStringSubmatch(strings.TrimRight(line, "\r")); caps != nil {
			return strings.TrimSpace(caps[1])
		}
	}
	return ""
}

func layerHasContent(content, heading string) bool {
	body, ok := SectionBody(content, heading)
	return ok && HasContent(body)
}

func parseTasks(content string) TaskQueue {
	section := func(status TaskStatus) []TaskItem {
		body, ok := SectionBody(content, status.Heading())
		if !ok {
			return nil
		}
		return ParseTaskList(body, status)
	}

	return TaskQueue{
		Done:       section(StatusDone),
		InProgress: section(StatusInProgress),
		NextUp:     section(StatusNextUp),
		Icebox:     section(StatusIcebox),
	}
}

package styles

import (
	"github.com/charmbracelet/lipgloss"

	"nira/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	Info      = lipgloss.Color("#60A5FA") // Blue
	White     = lipgloss.Color("#FFFFFF")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Task Queue sections
	SectionHeading = lipgloss.NewStyle().
			Bold(true).
			Foreground(Secondary)

	TaskNumber = lipgloss.NewStyle().
			Foreground(Muted).
			Width(4).
			Align(lipgloss.Right)

	TaskDone = lipgloss.NewStyle().
			Foreground(Muted).
			Strikethrough(true)

	TaskInProgress = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	TaskNextUp = lipgloss.NewStyle()

	TaskIcebox = lipgloss.NewStyle().
			Foreground(Info).
			Italic(true)

	TaskSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	TaskMeta = lipgloss.NewStyle().
			Foreground(Muted).
			PaddingLeft(7)

	// Validation
	LayerOk      = lipgloss.NewStyle().Foreground(Secondary)
	LayerWarning = lipgloss.NewStyle().Foreground(Warning)
	LayerMissing = lipgloss.NewStyle().Foreground(Error)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// TaskStyle returns the style for a task in the given section
func TaskStyle(status domain.TaskStatus) lipgloss.Style {
	switch status {
	case domain.StatusDone:
		return TaskDone
	case domain.StatusInProgress:
		return TaskInProgress
	case domain.StatusIcebox:
		return TaskIcebox
	default:
		return TaskNextUp
	}
}

// LayerStyle returns the style for a validation status
func LayerStyle(status domain.ValidationStatus) lipgloss.Style {
	switch status {
	case domain.ValidationOk:
		return LayerOk
	case domain.ValidationWarning:
		return LayerWarning
	default:
		return LayerMissing
	}
}

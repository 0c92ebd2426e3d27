package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"nira/internal/adapters/tui/styles"
	"nira/internal/application/commands"
	"nira/internal/domain"
	"nira/internal/ports"
)

// BoardKeyMap defines key bindings for the task board
type BoardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Top        key.Binding
	Bottom     key.Binding
	Start      key.Binding
	Done       key.Binding
	Next       key.Binding
	Ice        key.Binding
	Add        key.Binding
	Edit       key.Binding
	Reload     key.Binding
	Validation key.Binding
	Help       key.Binding
	Quit       key.Binding
}

var BoardKeys = BoardKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "first"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "last"),
	),
	Start: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "start"),
	),
	Done: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "done"),
	),
	Next: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next up"),
	),
	Ice: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "icebox"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Validation: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "validation"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// BoardModel shows the Task Queue and moves tasks between sections
type BoardModel struct {
	ViewState
	repo    ports.BlueprintRepository
	journal ports.Journal

	bp             *domain.Blueprint
	results        []domain.ValidationResult
	active         []domain.NumberedTask
	cursor         int
	showValidation bool
}

// NewBoardModel creates a new board model
func NewBoardModel(repo ports.BlueprintRepository, journal ports.Journal) *BoardModel {
	return &BoardModel{
		repo:    repo,
		journal: journal,
	}
}

type boardLoadedMsg struct {
	bp      *domain.Blueprint
	results []domain.ValidationResult
}

// Init loads the blueprint
func (m *BoardModel) Init() tea.Cmd {
	return m.load
}

func (m *BoardModel) load() tea.Msg {
	result, err := commands.NewValidateCommand(m.repo).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return boardLoadedMsg{bp: result.Blueprint, results: result.Results}
}

// Reload re-reads the blueprint from disk, keeping the cursor where it is
func (m *BoardModel) Reload() tea.Cmd {
	return m.load
}

// Update handles messages for the board
func (m *BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case boardLoadedMsg:
		m.bp = msg.bp
		m.results = msg.results
		m.active = msg.bp.Tasks.Active()
		m.clampCursor()
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case successMsg:
		m.SetMessage(msg.message, false)
		return m, m.load

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, BoardKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BoardKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, BoardKeys.Down):
			if m.cursor < len(m.active)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, BoardKeys.Top):
			m.cursor = 0
			return m, nil

		case key.Matches(msg, BoardKeys.Bottom):
			m.cursor = len(m.active) - 1
			m.clampCursor()
			return m, nil

		case key.Matches(msg, BoardKeys.Start):
			return m, m.moveSelected(domain.StatusInProgress)

		case key.Matches(msg, BoardKeys.Done):
			return m, m.moveSelected(domain.StatusDone)

		case key.Matches(msg, BoardKeys.Next):
			return m, m.moveSelected(domain.StatusNextUp)

		case key.Matches(msg, BoardKeys.Ice):
			return m, m.moveSelected(domain.StatusIcebox)

		case key.Matches(msg, BoardKeys.Add):
			return m, func() tea.Msg {
				return SwitchToAddMsg{}
			}

		case key.Matches(msg, BoardKeys.Edit):
			path := m.repo.Path()
			return m, func() tea.Msg {
				return OpenEditorMsg{Path: path}
			}

		case key.Matches(msg, BoardKeys.Reload):
			m.ClearMessage()
			return m, m.load

		case key.Matches(msg, BoardKeys.Validation):
			m.showValidation = !m.showValidation
			return m, nil

		case key.Matches(msg, BoardKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

func (m *BoardModel) moveSelected(target domain.TaskStatus) tea.Cmd {
	selected, ok := m.selected()
	if !ok {
		return nil
	}
	if selected.Task.Status == target {
		m.SetMessage(fmt.Sprintf("Task #%d is already in %s", selected.Number, target.Label()), false)
		return nil
	}

	cmd := commands.NewMoveTaskCommand(m.repo, m.journal, selected.Number, target)
	return func() tea.Msg {
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return successMsg{result.Message}
	}
}

func (m *BoardModel) selected() (domain.NumberedTask, bool) {
	if m.cursor >= 0 && m.cursor < len(m.active) {
		return m.active[m.cursor], true
	}
	return domain.NumberedTask{}, false
}

func (m *BoardModel) clampCursor() {
	if m.cursor >= len(m.active) {
		m.cursor = len(m.active) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the board
func (m *BoardModel) View() string {
	if m.bp == nil {
		if m.Message != "" {
			return styles.App.Render(m.RenderMessage())
		}
		return "Loading..."
	}

	var b strings.Builder

	name := m.bp.ProjectName
	if name == "" {
		name = "(untitled)"
	}
	b.WriteString(styles.Title.Render("Blueprint: " + name))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(m.repo.Path()))
	b.WriteString("\n\n")

	b.WriteString(m.renderDone())
	for _, status := range []domain.TaskStatus{domain.StatusInProgress, domain.StatusNextUp, domain.StatusIcebox} {
		b.WriteString(m.renderSection(status))
	}

	if m.showValidation {
		b.WriteString(m.renderValidation())
	}

	if msg := m.RenderMessage(); msg != "" {
		b.WriteString("\n")
		b.WriteString(msg)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelpLine())

	return styles.App.Render(b.String())
}

func (m *BoardModel) renderDone() string {
	var b strings.Builder

	done := m.bp.Tasks.Done
	b.WriteString(styles.SectionHeading.Render(fmt.Sprintf("%s (%d)", domain.StatusDone.Heading(), len(done))))
	b.WriteString("\n")
	for _, task := range done {
		b.WriteString(styles.TaskNumber.Render(""))
		b.WriteString(" ")
		b.WriteString(styles.TaskDone.Render(task.Text))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	return b.String()
}

func (m *BoardModel) renderSection(status domain.TaskStatus) string {
	var b strings.Builder

	var tasks []domain.NumberedTask
	for _, nt := range m.active {
		if nt.Task.Status == status {
			tasks = append(tasks, nt)
		}
	}

	b.WriteString(styles.SectionHeading.Render(fmt.Sprintf("%s (%d)", status.Heading(), len(tasks))))
	b.WriteString("\n")
	if len(tasks) == 0 {
		b.WriteString(styles.MutedText.Render("     empty"))
		b.WriteString("\n")
	}

	selected, _ := m.selected()
	for _, nt := range tasks {
		isSelected := nt.Number == selected.Number
		b.WriteString(m.renderTask(nt, isSelected))
		b.WriteString("\n")
		if isSelected {
			b.WriteString(renderTaskMeta(nt.Task))
		}
	}
	b.WriteString("\n")

	return b.String()
}

func (m *BoardModel) renderTask(nt domain.NumberedTask, selected bool) string {
	number := styles.TaskNumber.Render(fmt.Sprintf("%d.", nt.Number))
	if selected {
		return number + " " + styles.TaskSelected.Render(nt.Task.Text)
	}
	return number + " " + styles.TaskStyle(nt.Task.Status).Render(nt.Task.Text)
}

func renderTaskMeta(task domain.TaskItem) string {
	var b strings.Builder
	for _, field := range []struct {
		label string
		value string
	}{
		{"Context", task.Context},
		{"Files", task.Files},
		{"Approach", task.Approach},
	} {
		if field.value == "" {
			continue
		}
		b.WriteString(styles.TaskMeta.Render(field.label + ": " + field.value))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *BoardModel) renderValidation() string {
	var b strings.Builder

	b.WriteString(styles.SectionHeading.Render("Validation"))
	b.WriteString("\n")
	for _, r := range m.results {
		line := fmt.Sprintf("  %s Layer %d: %s", r.Status.Symbol(), r.Layer, r.Message)
		b.WriteString(styles.LayerStyle(r.Status).Render(line))
		b.WriteString("\n")
	}
	if domain.HasMissing(m.results) {
		b.WriteString(styles.MutedText.Render("  Fill in the missing layers before starting work."))
		b.WriteString("\n")
	}

	return b.String()
}

func (m *BoardModel) renderHelpLine() string {
	return renderHelpKeys([]helpKey{
		{"j/k", "navigate"},
		{"s/d/n/i", "move"},
		{"a", "add"},
		{"e", "edit"},
		{"v", "validation"},
		{"?", "help"},
		{"q", "quit"},
	})
}

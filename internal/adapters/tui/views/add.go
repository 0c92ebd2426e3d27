package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"nira/internal/adapters/tui/styles"
	"nira/internal/application/commands"
	"nira/internal/ports"
)

// AddModel is the model for the add-task view
type AddModel struct {
	ViewState
	repo    ports.BlueprintRepository
	journal ports.Journal
	form    *InputForm
}

// NewAddModel creates a new add-task view model
func NewAddModel(repo ports.BlueprintRepository, journal ports.Journal) *AddModel {
	return &AddModel{
		repo:    repo,
		journal: journal,
		form:    NewInputForm("Description", "What needs doing?", 200),
	}
}

// Init resets the form and starts the cursor blinking
func (m *AddModel) Init() tea.Cmd {
	m.form.Reset()
	m.ClearMessage()
	return m.form.Init()
}

// Update handles messages for the add view
func (m *AddModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, func() tea.Msg {
				return SwitchToBoardMsg{}
			}
		case key.Matches(msg, m.form.Keys.Submit):
			return m, m.submit()
		}
	}

	return m, m.form.Update(msg)
}

func (m *AddModel) submit() tea.Cmd {
	cmd := commands.NewAddTaskCommand(m.repo, m.journal, m.form.Value())
	if err := cmd.Validate(); err != nil {
		m.SetMessage(err.Error(), true)
		return nil
	}
	return func() tea.Msg {
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return TaskAddedMsg{Message: result.Message}
	}
}

// View renders the add view
func (m *AddModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Add Task"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Appended to NEXT UP"))
	b.WriteString("\n\n")
	b.WriteString(m.form.Render())
	b.WriteString("\n")

	if msg := m.RenderMessage(); msg != "" {
		b.WriteString("\n")
		b.WriteString(msg)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.form.RenderHelp("add"))

	return styles.App.Render(b.String())
}

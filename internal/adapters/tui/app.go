package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"nira/internal/adapters/tui/views"
	"nira/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBoard ViewState = iota
	ViewAdd
	ViewHelp
)

// App is the main TUI application model
type App struct {
	repo   ports.BlueprintRepository
	editor ports.EditorOpener

	state ViewState
	board *views.BoardModel
	add   *views.AddModel
	help  *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application. journal and ed may be nil.
func NewApp(repo ports.BlueprintRepository, journal ports.Journal, ed ports.EditorOpener) *App {
	return &App{
		repo:   repo,
		editor: ed,
		state:  ViewBoard,
		board:  views.NewBoardModel(repo, journal),
		add:    views.NewAddModel(repo, journal),
		help:   views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.board.Init()
}

// State returns the view currently shown
func (a *App) State() ViewState {
	return a.state
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.board.SetSize(msg.Width, msg.Height)
		a.add.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	// View switching messages
	case views.SwitchToAddMsg:
		a.state = ViewAdd
		return a, a.add.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBoardMsg:
		a.state = ViewBoard
		return a, a.board.Reload()

	case views.TaskAddedMsg:
		a.state = ViewBoard
		a.board.SetMessage(msg.Message, false)
		return a, a.board.Reload()

	case views.OpenEditorMsg:
		a.state = ViewBoard
		return a, a.openEditor(msg.Path)

	case editorFinishedMsg:
		if msg.err != nil {
			a.board.SetMessage(fmt.Sprintf("editor: %v", msg.err), true)
		} else {
			a.board.ClearMessage()
		}
		return a, a.board.Reload()
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBoard:
		_, cmd = a.board.Update(msg)
	case ViewAdd:
		_, cmd = a.add.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: fmt.Errorf("no editor configured")}
		}
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewAdd:
		return a.add.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.board.View()
	}
}

// Run starts the board in the terminal's alternate screen and blocks until
// the user quits.
func Run(repo ports.BlueprintRepository, journal ports.Journal, ed ports.EditorOpener) error {
	p := tea.NewProgram(NewApp(repo, journal, ed), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

package views

import (
	"fmt"
	"strings"

	"nira/internal/adapters/tui/styles"
)

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// RenderMessage renders the current message, or nothing
func (s *ViewState) RenderMessage() string {
	if s.Message == "" {
		return ""
	}
	if s.MessageErr {
		return styles.ErrorMsg.Render(s.Message)
	}
	return styles.Success.Render(s.Message)
}

// Messages for view switching
type SwitchToBoardMsg struct{}

type SwitchToAddMsg struct{}

type SwitchToHelpMsg struct{}

// OpenEditorMsg asks the app to hand the terminal to the editor
type OpenEditorMsg struct {
	Path string
}

// TaskAddedMsg is sent once the add view has written a new task
type TaskAddedMsg struct {
	Message string
}

type errMsg struct{ err error }

type successMsg struct{ message string }

type helpKey struct {
	key  string
	desc string
}

func renderHelpKeys(keys []helpKey) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s",
			styles.HelpKey.Render(k.key),
			styles.HelpDesc.Render(k.desc),
		))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

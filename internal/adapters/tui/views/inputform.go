package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"nira/internal/adapters/tui/styles"
)

// InputFormKeyMap defines key bindings for input forms
type InputFormKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

var DefaultInputFormKeys = InputFormKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// InputForm is a single labelled text input
type InputForm struct {
	Label string
	Input textinput.Model
	Keys  InputFormKeyMap
}

// NewInputForm creates a focused input with the given label and placeholder
func NewInputForm(label, placeholder string, charLimit int) *InputForm {
	input := textinput.New()
	input.Placeholder = placeholder
	if charLimit > 0 {
		input.CharLimit = charLimit
	}
	input.Focus()

	return &InputForm{
		Label: label,
		Input: input,
		Keys:  DefaultInputFormKeys,
	}
}

// Init returns the blink command for the input
func (f *InputForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards msg to the text input
func (f *InputForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.Input, cmd = f.Input.Update(msg)
	return cmd
}

// Value returns the trimmed input value
func (f *InputForm) Value() string {
	return strings.TrimSpace(f.Input.Value())
}

// SetValue replaces the input value
func (f *InputForm) SetValue(value string) {
	f.Input.SetValue(value)
}

// Reset clears the value and refocuses the input
func (f *InputForm) Reset() {
	f.Input.SetValue("")
	f.Input.Focus()
}

// Render renders the label and the input box
func (f *InputForm) Render() string {
	var b strings.Builder

	b.WriteString(styles.InputLabel.Render(f.Label))
	b.WriteString("\n")
	if f.Input.Focused() {
		b.WriteString(styles.InputFocused.Render(f.Input.View()))
	} else {
		b.WriteString(styles.InputField.Render(f.Input.View()))
	}

	return b.String()
}

// RenderHelp renders the help text for the form
func (f *InputForm) RenderHelp(submitText string) string {
	return renderHelpKeys([]helpKey{
		{"enter", submitText},
		{"esc", "cancel"},
	})
}

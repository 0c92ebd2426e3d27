package ports

import "os/exec"

// EditorOpener opens the blueprint in the user's text editor
type EditorOpener interface {
	// OpenFile runs the editor on path and waits for it to exit
	OpenFile(path string) error

	// Command returns the editor process without starting it, so a TUI can
	// hand the terminal over with tea.ExecProcess
	Command(path string) (*exec.Cmd, error)
}

// BrowserOpener shows a URL to the user
type BrowserOpener interface {
	// OpenURL opens the URL in the system's default browser
	OpenURL(url string) error
}

package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"nira/internal/ports"
)

// Opener implements ports.BrowserOpener using the platform's URL handler
type Opener struct {
	goos string
}

var _ ports.BrowserOpener = (*Opener)(nil)

// NewOpener creates a new browser opener for the running OS
func NewOpener() *Opener {
	return &Opener{goos: runtime.GOOS}
}

// OpenURL opens an http(s) URL in the default browser. It does not wait for
// the browser to exit.
func (o *Opener) OpenURL(rawURL string) error {
	cmd, err := o.Command(rawURL)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	go cmd.Wait()
	return nil
}

// Command builds the process that opens rawURL
func (o *Opener) Command(rawURL string) (*exec.Cmd, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("refusing to open non-http URL: %s", rawURL)
	}

	switch o.goos {
	case "darwin":
		return exec.Command("open", rawURL), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", rawURL), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", "", rawURL), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", o.goos)
	}
}

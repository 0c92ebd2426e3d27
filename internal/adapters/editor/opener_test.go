package editor

import (
	"errors"
	"os/exec"
	"testing"
)

func TestOpener_Command(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		onPath   map[string]string
		wantArgs []string
		wantErr  bool
	}{
		{
			name:     "EDITOR wins",
			env:      map[string]string{"EDITOR": "hx", "VISUAL": "code"},
			wantArgs: []string{"hx", "/work/blueprint.md"},
		},
		{
			name:     "EDITOR with arguments",
			env:      map[string]string{"EDITOR": "code --wait"},
			wantArgs: []string{"code", "--wait", "/work/blueprint.md"},
		},
		{
			name:     "VISUAL fallback",
			env:      map[string]string{"VISUAL": "emacs"},
			wantArgs: []string{"emacs", "/work/blueprint.md"},
		},
		{
			name:     "first editor on PATH",
			onPath:   map[string]string{"vi": "/usr/bin/vi", "nano": "/usr/bin/nano"},
			wantArgs: []string{"/usr/bin/vi", "/work/blueprint.md"},
		},
		{
			name:    "nothing available",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Opener{
				getenv: func(k string) string { return tt.env[k] },
				lookPath: func(name string) (string, error) {
					if p, ok := tt.onPath[name]; ok {
						return p, nil
					}
					return "", exec.ErrNotFound
				},
			}

			cmd, err := o.Command("/work/blueprint.md")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(cmd.Args) != len(tt.wantArgs) {
				t.Fatalf("expected args %v, got %v", tt.wantArgs, cmd.Args)
			}
			for i := range tt.wantArgs {
				if cmd.Args[i] != tt.wantArgs[i] {
					t.Errorf("arg %d: expected %q, got %q", i, tt.wantArgs[i], cmd.Args[i])
				}
			}
		})
	}
}

func TestOpener_OpenFileWithoutEditor(t *testing.T) {
	o := &Opener{
		getenv:   func(string) string { return "" },
		lookPath: func(string) (string, error) { return "", errors.New("missing") },
	}
	if err := o.OpenFile("/work/blueprint.md"); err == nil {
		t.Error("expected error when no editor is available")
	}
}

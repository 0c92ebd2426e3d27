package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"nira/internal/adapters/editor"
	"nira/internal/adapters/tui"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse and move tasks in a terminal board",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(repo, journal, editor.NewOpener())
	},
}

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the blueprint in $EDITOR",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !repo.Exists() {
			return fmt.Errorf("no blueprint at %s (run 'nira init' first)", repo.Path())
		}
		return editor.NewOpener().OpenFile(repo.Path())
	},
}

func init() {
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(editCmd)
}

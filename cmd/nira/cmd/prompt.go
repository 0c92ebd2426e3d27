package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"nira/internal/application"
	"nira/internal/application/commands"
)

var (
	promptTask int
	promptCopy bool
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Generate an AI-ready prompt from the blueprint",
	Long: `Print a prompt that hands the blueprint to a coding agent.

With --task the prompt also names the active task to work on.

Examples:
  nira prompt
  nira prompt --task 2
  nira prompt --copy`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		promptCmd := commands.NewPromptCommand(repo, promptTask)
		result, err := promptCmd.Execute(context.Background())
		if errors.Is(err, application.ErrNotFound) {
			return fmt.Errorf("%w (run 'nira task list' to see available tasks)", err)
		}
		if err != nil {
			return err
		}

		if promptCopy {
			if err := clipboard.WriteAll(result.Prompt); err != nil {
				return fmt.Errorf("failed to copy prompt: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "✓ %s (copied to clipboard)\n", result.Message)
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), result.Prompt)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(promptCmd)
	promptCmd.Flags().IntVar(&promptTask, "task", 0, "focus the prompt on an active task number")
	promptCmd.Flags().BoolVar(&promptCopy, "copy", false, "copy the prompt to the clipboard instead of printing it")
}

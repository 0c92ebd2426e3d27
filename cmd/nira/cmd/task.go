package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"nira/internal/application/commands"
	"nira/internal/domain"
)

var taskListFormat string

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks in Layer 4",
	Long: `List, add and move tasks in the Task Queue.

Active tasks are numbered IN PROGRESS first, then NEXT UP, then ICEBOX.
DONE tasks are not numbered.

Examples:
  nira task list
  nira task add "Write the parser"
  nira task start 2
  nira task move 3 icebox`,
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkFormat(taskListFormat); err != nil {
			return err
		}

		listCmd := commands.NewListTasksCommand(repo)
		result, err := listCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		if taskListFormat != formatText {
			return writeStructured(cmd.OutOrStdout(), taskListFormat, result)
		}
		printTaskList(cmd.OutOrStdout(), repo.Path(), result)
		return nil
	},
}

var taskAddCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Add a task to NEXT UP",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addCmd := commands.NewAddTaskCommand(repo, journal, strings.Join(args, " "))
		result, err := addCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s\n", result.Message)
		return nil
	},
}

var taskMoveCmd = &cobra.Command{
	Use:   "move <task-number> <done|in-progress|next-up|icebox>",
	Short: "Move a task to another section",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := domain.ParseTaskStatus(args[1])
		if err != nil {
			return err
		}
		return runMove(cmd, args[0], target)
	},
}

// newMoveShortcut builds one of the done/start/next/ice commands
func newMoveShortcut(use, short string, target domain.TaskStatus) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <task-number>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMove(cmd, args[0], target)
		},
	}
}

func runMove(cmd *cobra.Command, arg string, target domain.TaskStatus) error {
	number, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("invalid task number %q", arg)
	}

	moveCmd := commands.NewMoveTaskCommand(repo, journal, number, target)
	result, err := moveCmd.Execute(context.Background())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s\n", result.Message)
	return nil
}

func printTaskList(w io.Writer, path string, result *commands.ListTasksResult) {
	fmt.Fprintf(w, "Tasks for: %s\n\n", path)

	if len(result.Done) > 0 {
		fmt.Fprintf(w, "✓ DONE (%d):\n", len(result.Done))
		for _, task := range result.Done {
			fmt.Fprintf(w, "  • %s\n", task.Text)
		}
		fmt.Fprintln(w)
	}

	if len(result.Active) == 0 {
		fmt.Fprintln(w, `No active tasks. Add some with 'nira task add "description"'`)
		return
	}

	var nextUp, icebox []domain.NumberedTask
	for _, nt := range result.Active {
		switch nt.Task.Status {
		case domain.StatusInProgress:
			fmt.Fprintf(w, "→ IN PROGRESS #%d:\n", nt.Number)
			fmt.Fprintf(w, "  %s\n", nt.Task.Text)
			if nt.Task.HasContext() {
				fmt.Fprintf(w, "  Context: %s\n", nt.Task.Context)
			}
			if nt.Task.HasFiles() {
				fmt.Fprintf(w, "  Files: %s\n", nt.Task.Files)
			}
			fmt.Fprintln(w)
		case domain.StatusNextUp:
			nextUp = append(nextUp, nt)
		case domain.StatusIcebox:
			icebox = append(icebox, nt)
		}
	}

	if len(nextUp) > 0 {
		fmt.Fprintln(w, "⋯ NEXT UP:")
		for _, nt := range nextUp {
			fmt.Fprintf(w, "  %d. %s\n", nt.Number, nt.Task.Text)
			if nt.Task.HasApproach() {
				fmt.Fprintf(w, "     → %s\n", nt.Task.Approach)
			}
		}
		fmt.Fprintln(w)
	}

	if len(icebox) > 0 {
		fmt.Fprintln(w, "❄ ICEBOX:")
		for _, nt := range icebox {
			fmt.Fprintf(w, "  %d. %s\n", nt.Number, nt.Task.Text)
		}
	}
}

func init() {
	rootCmd.AddCommand(taskCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskMoveCmd)
	taskCmd.AddCommand(newMoveShortcut("done", "Move a task to DONE", domain.StatusDone))
	taskCmd.AddCommand(newMoveShortcut("start", "Move a task to IN PROGRESS", domain.StatusInProgress))
	taskCmd.AddCommand(newMoveShortcut("next", "Move a task to NEXT UP", domain.StatusNextUp))
	taskCmd.AddCommand(newMoveShortcut("ice", "Move a task to ICEBOX", domain.StatusIcebox))

	taskListCmd.Flags().StringVar(&taskListFormat, "format", formatText, "output format (text, json, yaml)")
}

package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"nira/internal/application/commands"
)

var (
	historyLimit  int
	historyFormat string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded revisions of the blueprint",
	Long: `List the revisions the journal recorded before each change nira made
to the blueprint, newest first. Use 'nira restore <id>' to roll back.

Examples:
  nira history
  nira history --limit 5 --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkFormat(historyFormat); err != nil {
			return err
		}

		historyCmd := commands.NewHistoryCommand(repo, journal, historyLimit)
		result, err := historyCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if historyFormat != formatText {
			return writeStructured(out, historyFormat, result.Revisions)
		}

		if len(result.Revisions) == 0 {
			fmt.Fprintf(out, "No revisions recorded for %s\n", repo.Path())
			return nil
		}
		for _, rev := range result.Revisions {
			fmt.Fprintf(out, "%5d  %s  %-7s  %s\n",
				rev.ID, rev.CreatedAt.Local().Format("2006-01-02 15:04"), rev.Op, rev.Summary)
		}
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <revision-id>",
	Short: "Write a recorded revision back to the blueprint",
	Long: `Replace the blueprint with the text of a recorded revision. The text being
replaced is recorded first, so a restore can be undone the same way.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid revision ID %q", args[0])
		}

		restoreCmd := commands.NewRestoreCommand(repo, journal, id)
		result, err := restoreCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s\n", result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(restoreCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", commands.DefaultHistoryLimit, "number of revisions to show")
	historyCmd.Flags().StringVar(&historyFormat, "format", formatText, "output format (text, json, yaml)")
}

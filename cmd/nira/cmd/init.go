package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"nira/internal/application/commands"
)

var (
	initName  string
	initForce bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new blueprint from the template",
	Long: `Create a blueprint in the current directory from the built-in template.

The project name defaults to the name of the current directory.

Examples:
  nira init
  nira init --name Billing
  nira init --force          # overwrite an existing blueprint`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := initName
		if name == "" {
			if wd, err := os.Getwd(); err == nil {
				name = filepath.Base(wd)
			}
		}

		initCmd := commands.NewInitCommand(repo, journal, name, initForce)
		result, err := initCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "✓ %s\n", result.Message)
		fmt.Fprintln(out, "\nNext steps:")
		fmt.Fprintf(out, "  1. Edit %s and fill in the layers\n", filepath.Base(result.Path))
		fmt.Fprintln(out, "  2. Run 'nira validate' to check your progress")
		fmt.Fprintln(out, "  3. Run 'nira prompt' to generate AI instructions")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&initName, "name", "", "project name (default: current directory name)")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing blueprint")
}

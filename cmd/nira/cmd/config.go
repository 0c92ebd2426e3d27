package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"nira/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration nira uses after merging the user config file,
the project config file, NIRA_* environment variables and flags.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if path := config.UserConfigFile(); path != "" {
			fmt.Fprintf(out, "# user config: %s\n", path)
		}
		fmt.Fprintf(out, "# blueprint: %s\n\n", repo.Path())
		return config.Encode(out, cfg)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

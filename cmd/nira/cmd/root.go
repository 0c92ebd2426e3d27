package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"nira/internal/adapters/filesystem"
	"nira/internal/adapters/sqlite"
	"nira/internal/config"
	"nira/internal/logging"
	"nira/internal/ports"
)

var (
	filePath string
	logLevel string

	cfg     *config.Config
	repo    *filesystem.Repository
	journal ports.Journal
	logger  *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "nira",
	Short: "Keep a four-layer blueprint next to your code",
	Long: `nira manages blueprint.md, a planning document with four layers:
an Intent Map, Interface Contracts, a File Skeleton and a Task Queue.

It validates the layers, moves tasks through DONE / IN PROGRESS / NEXT UP /
ICEBOX, builds prompts for coding agents and serves a live editor.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		return setup(cmd)
	},
}

func setup(cmd *cobra.Command) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err = config.Load(wd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("file") {
		cfg.File = filePath
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger = logging.New(cfg.LogLevel, os.Stderr)
	repo = filesystem.NewRepository(cfg.File)
	logger.Debug("blueprint", "path", repo.Path())

	journal = nil
	if cfg.Journal.Enabled {
		j, err := sqlite.Open(cfg.Journal.DataDir, cfg.Journal.Keep)
		if err != nil {
			// history is optional; mutations still go through
			logger.Warn("revision journal unavailable", "err", err)
		} else {
			journal = j
			logger.Debug("journal", "db", j.DBPath())
		}
	}
	return nil
}

// exitError ends the process with code without printing anything more
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// Execute runs the root command
func Execute() {
	err := execute()
	if err == nil {
		return
	}

	var exit *exitError
	if errors.As(err, &exit) {
		os.Exit(exit.code)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// execute runs the command tree and closes the journal whether or not the
// command failed. cobra skips post-run hooks after an error.
func execute() error {
	err := rootCmd.Execute()
	if cerr := closeJournal(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func closeJournal() error {
	if journal == nil {
		return nil
	}
	err := journal.Close()
	journal = nil
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&filePath, "file", "f", config.DefaultFile, "path to the blueprint")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
}

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"nira/internal/application/commands"
	"nira/internal/domain"
)

var validateFormat string

type validateOutput struct {
	File     string                    `json:"file" yaml:"file"`
	Complete bool                      `json:"complete" yaml:"complete"`
	Results  []domain.ValidationResult `json:"results" yaml:"results"`
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check blueprint completeness",
	Long: `Check that every layer of the blueprint has real content and that the
Task Queue has work in it. Exits with status 1 when any layer is missing.

Examples:
  nira validate
  nira validate --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkFormat(validateFormat); err != nil {
			return err
		}

		validateCmd := commands.NewValidateCommand(repo)
		result, err := validateCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if validateFormat == formatText {
			printValidation(out, repo.Path(), result.Results)
		} else {
			err := writeStructured(out, validateFormat, validateOutput{
				File:     repo.Path(),
				Complete: !result.HasMissing,
				Results:  result.Results,
			})
			if err != nil {
				return err
			}
		}

		if result.HasMissing {
			return &exitError{code: 1}
		}
		return nil
	},
}

func printValidation(w io.Writer, path string, results []domain.ValidationResult) {
	fmt.Fprintf(w, "Blueprint Validation: %s\n\n", path)
	for _, r := range results {
		fmt.Fprintf(w, "%s Layer %d: %s - %s\n", r.Status.Symbol(), r.Layer, r.LayerName, r.Message)
	}
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringVar(&validateFormat, "format", formatText, "output format (text, json, yaml)")
}

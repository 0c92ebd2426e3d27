package commands

import (
	"context"
	"fmt"

	"nira/internal/domain"
	"nira/internal/ports"
)

// ValidateResult contains the outcome of checking a blueprint
type ValidateResult struct {
	Blueprint  *domain.Blueprint
	Results    []domain.ValidationResult
	HasMissing bool
	Message    string
}

// ValidateCommand checks the four layers of a blueprint
type ValidateCommand struct {
	repo ports.BlueprintRepository
}

// NewValidateCommand creates a new ValidateCommand
func NewValidateCommand(repo ports.BlueprintRepository) *ValidateCommand {
	return &ValidateCommand{repo: repo}
}

// Execute runs the validate command
func (c *ValidateCommand) Execute(ctx context.Context) (*ValidateResult, error) {
	_, bp, err := loadBlueprint(c.repo)
	if err != nil {
		return nil, err
	}

	results := domain.Validate(bp)
	missing := 0
	for _, r := range results {
		if r.Status == domain.ValidationMissing {
			missing++
		}
	}

	msg := "Blueprint is complete"
	if missing > 0 {
		msg = fmt.Sprintf("Blueprint incomplete: %d layer(s) missing", missing)
	}

	return &ValidateResult{
		Blueprint:  bp,
		Results:    results,
		HasMissing: missing > 0,
		Message:    msg,
	}, nil
}

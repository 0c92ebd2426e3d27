package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"nira/internal/application"
	"nira/internal/domain"
	"nira/internal/ports"
)

// InitResult contains the result of scaffolding a blueprint
type InitResult struct {
	Path        string
	ProjectName string
	Overwrote   bool
	Message     string
}

// InitCommand writes a fresh blueprint from the template.
// Template overrides the built-in template when non-empty.
type InitCommand struct {
	repo        ports.BlueprintRepository
	journal     ports.Journal
	ProjectName string
	Force       bool
	Template    string
	Now         func() time.Time
}

// NewInitCommand creates a new InitCommand. journal may be nil.
func NewInitCommand(repo ports.BlueprintRepository, journal ports.Journal, projectName string, force bool) *InitCommand {
	return &InitCommand{
		repo:        repo,
		journal:     journal,
		ProjectName: projectName,
		Force:       force,
		Now:         time.Now,
	}
}

// Validate checks if the init operation is valid
func (c *InitCommand) Validate() error {
	if err := application.ValidateSingleLine("projectName", c.ProjectName); err != nil {
		return err
	}
	if c.repo.Exists() && !c.Force {
		return &application.ExistsError{Path: c.repo.Path()}
	}
	return nil
}

// Execute runs the init command
func (c *InitCommand) Execute(ctx context.Context) (*InitResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	name := strings.TrimSpace(c.ProjectName)
	content := domain.RenderTemplate(c.Template, name, now())

	overwrote := c.repo.Exists()
	if overwrote {
		previous, err := c.repo.Read()
		if err != nil {
			return nil, fmt.Errorf("failed to read existing blueprint: %w", err)
		}
		if err := commit(ctx, c.repo, c.journal, "init", "init --force", previous, content); err != nil {
			return nil, err
		}
	} else if err := c.repo.Write(content); err != nil {
		return nil, fmt.Errorf("failed to write blueprint: %w", err)
	}

	projectName := domain.Parse(content, c.repo.Path()).ProjectName
	return &InitResult{
		Path:        c.repo.Path(),
		ProjectName: projectName,
		Overwrote:   overwrote,
		Message:     fmt.Sprintf("Created %s for %s", c.repo.Path(), projectName),
	}, nil
}

package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"nira/internal/application/commands"
	"nira/internal/domain"
	"nira/internal/ports"
)

// RegisterReadTools adds all read-only blueprint tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, repo ports.BlueprintRepository) {
	s.AddTool(validateTool(), validateHandler(repo))
	s.AddTool(listTasksTool(), listTasksHandler(repo))
	s.AddTool(readBlueprintTool(), readBlueprintHandler(repo))
	s.AddTool(promptTool(), promptHandler(repo))
}

// --- validate ---

func validateTool() mcp.Tool {
	return mcp.NewTool("validate",
		mcp.WithDescription("Check the four blueprint layers (Intent Map, Interface Contracts, File Skeleton, Task Queue) and report which are missing or weak."),
	)
}

func validateHandler(repo ports.BlueprintRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewValidateCommand(repo).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		for _, r := range result.Results {
			sb.WriteString(formatValidation(r))
			sb.WriteByte('\n')
		}
		sb.WriteString(result.Message)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- list_tasks ---

func listTasksTool() mcp.Tool {
	return mcp.NewTool("list_tasks",
		mcp.WithDescription("List the Task Queue. Active tasks (IN PROGRESS, NEXT UP, ICEBOX) are numbered; use these numbers with move_task and prompt."),
	)
}

func listTasksHandler(repo ports.BlueprintRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewListTasksCommand(repo).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(result.Done) == 0 && len(result.Active) == 0 {
			return mcp.NewToolResultText("No tasks."), nil
		}

		var sb strings.Builder
		for _, t := range result.Done {
			fmt.Fprintf(&sb, "   %s %s\n", t.Status.Symbol(), t.Text)
		}
		for _, nt := range result.Active {
			sb.WriteString(formatNumberedTask(nt))
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- read_blueprint ---

func readBlueprintTool() mcp.Tool {
	return mcp.NewTool("read_blueprint",
		mcp.WithDescription("Read the full markdown text of the blueprint."),
	)
}

func readBlueprintHandler(repo ports.BlueprintRepository) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if !repo.Exists() {
			return toolError(fmt.Errorf("no blueprint at %s", repo.Path()))
		}
		content, err := repo.Read()
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(content), nil
	}
}

// --- prompt ---

func promptTool() mcp.Tool {
	return mcp.NewTool("prompt",
		mcp.WithDescription("Generate an implementation prompt from the blueprint, optionally focused on one active task."),
		mcp.WithNumber("task_number",
			mcp.Description("Active task number to focus on. Omit for the whole blueprint."),
		),
	)
}

func promptHandler(repo ports.BlueprintRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		number := req.GetInt("task_number", 0)

		result, err := commands.NewPromptCommand(repo, number).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Prompt), nil
	}
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatValidation(r domain.ValidationResult) string {
	return fmt.Sprintf("%s Layer %d (%s): %s", r.Status.Symbol(), r.Layer, r.LayerName, r.Message)
}

func formatNumberedTask(nt domain.NumberedTask) string {
	return fmt.Sprintf("%2d %s %s [%s]", nt.Number, nt.Task.Status.Symbol(), nt.Task.Text, nt.Task.Status)
}

package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"nira/internal/application/commands"
	"nira/internal/domain"
	"nira/internal/ports"
)

// RegisterWriteTools adds the task mutation tools to the MCP server.
// journal may be nil.
func RegisterWriteTools(s *server.MCPServer, repo ports.BlueprintRepository, journal ports.Journal) {
	s.AddTool(addTaskTool(), addTaskHandler(repo, journal))
	s.AddTool(moveTaskTool(), moveTaskHandler(repo, journal))
}

// --- add_task ---

func addTaskTool() mcp.Tool {
	return mcp.NewTool("add_task",
		mcp.WithDescription("Append a task to the end of NEXT UP with empty Depends on, Files and Approach fields."),
		mcp.WithString("description",
			mcp.Description("One-line task description"),
			mcp.Required(),
		),
	)
}

func addTaskHandler(repo ports.BlueprintRepository, journal ports.Journal) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		description := req.GetString("description", "")

		result, err := commands.NewAddTaskCommand(repo, journal, description).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- move_task ---

func moveTaskTool() mcp.Tool {
	return mcp.NewTool("move_task",
		mcp.WithDescription("Move an active task to another Task Queue section. Numbers come from list_tasks and change after every move."),
		mcp.WithNumber("task_number",
			mcp.Description("Active task number"),
			mcp.Required(),
		),
		mcp.WithString("target",
			mcp.Description("Destination section"),
			mcp.Enum("done", "in-progress", "next-up", "icebox"),
			mcp.Required(),
		),
	)
}

func moveTaskHandler(repo ports.BlueprintRepository, journal ports.Journal) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		number := req.GetInt("task_number", 0)
		target, err := domain.ParseTaskStatus(req.GetString("target", ""))
		if err != nil {
			return toolError(err)
		}
		if number < 1 {
			return toolError(fmt.Errorf("task_number is required"))
		}

		result, err := commands.NewMoveTaskCommand(repo, journal, number, target).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

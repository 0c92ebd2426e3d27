package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"nira/internal/ports"
)

// Version is reported to MCP clients during initialization
const Version = "0.1.0"

// NewServer builds an MCP server exposing every blueprint tool plus a ping
// health check. journal may be nil.
func NewServer(name string, repo ports.BlueprintRepository, journal ports.Journal) *server.MCPServer {
	s := server.NewMCPServer(
		name,
		Version,
		server.WithToolCapabilities(true),
	)

	s.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	RegisterReadTools(s, repo)
	RegisterWriteTools(s, repo, journal)
	return s
}

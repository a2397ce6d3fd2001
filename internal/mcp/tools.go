// ABOUTME: MCP tool definitions and registration for the number facts server
// ABOUTME: Exposes the numbers API lookup as a single get_number_fact tool
package mcp

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/harper/numfacts/internal/facts"
	"github.com/harper/numfacts/internal/logging"
)

// ServerName and ServerVersion identify the MCP server to clients
const (
	ServerName    = "Number Facts"
	ServerVersion = "0.1.0"
)

// FactRequester performs a single lookup
type FactRequester interface {
	RequestFact(ctx context.Context, q facts.Query) (*facts.Result, error)
}

// NewServer creates an MCP server with all tools registered
func NewServer(requester FactRequester, defaultType facts.FactType, logger *log.Logger) *mcpserver.MCPServer {
	server := mcpserver.NewMCPServer(ServerName, ServerVersion)
	RegisterTools(server, requester, defaultType, logger)
	return server
}

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, requester FactRequester, defaultType facts.FactType, logger *log.Logger) *Handlers {
	if logger == nil {
		logger = logging.Discard()
	}
	if !defaultType.Valid() {
		defaultType = facts.TypeTrivia
	}

	handlers := &Handlers{
		requester:   requester,
		defaultType: defaultType,
		logger:      logger,
	}

	server.AddTool(mcp.Tool{
		Name:        "get_number_fact",
		Description: "Get a fact about a number from numbersapi.com. Pass a number, or set random to let the API pick one.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"number": map[string]interface{}{
					"type":        "string",
					"description": "Number to look up (ignored when random is true), e.g. \"42\" or \"3.14\"",
				},
				"type": map[string]interface{}{
					"type":        "string",
					"enum":        []string{string(facts.TypeTrivia), string(facts.TypeMath), string(facts.TypeDate)},
					"description": "Fact category (default: " + string(defaultType) + ")",
					"default":     string(defaultType),
				},
				"random": map[string]interface{}{
					"type":        "boolean",
					"description": "Ask the API for a fact about a random number",
					"default":     false,
				},
			},
		},
	}, handlers.GetNumberFact)

	return handlers
}

// ABOUTME: MCP tool handler implementations for the number facts server
// ABOUTME: Decodes tool arguments, runs the lookup, and returns JSON or a tool error
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mitchellh/mapstructure"

	"github.com/harper/numfacts/internal/facts"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	requester   FactRequester
	defaultType facts.FactType
	logger      *log.Logger
}

type factArgs struct {
	Number string `json:"number"`
	Type   string `json:"type"`
	Random bool   `json:"random"`
}

// GetNumberFact handles the get_number_fact tool
func (h *Handlers) GetNumberFact(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args factArgs
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &args,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("creating argument decoder: %w", err)
	}
	if err := decoder.Decode(request.GetArguments()); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	factType := h.defaultType
	if args.Type != "" {
		factType, err = facts.ParseFactType(args.Type)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	query := facts.Query{Number: args.Number, Type: factType, Random: args.Random}
	h.logger.Debug("get_number_fact", "number", query.Number, "type", query.Type, "random", query.Random)

	res, err := h.requester.RequestFact(ctx, query)
	if err != nil {
		h.logger.Debug("lookup failed", "err", err)
		return mcp.NewToolResultError(facts.UserMessage(err)), nil
	}

	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

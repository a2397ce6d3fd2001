// ABOUTME: mcp subcommand exposing fact lookups as an agent tool
// ABOUTME: Serves get_number_fact on stdin/stdout until interrupted
package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/harper/numfacts/internal/logging"
	"github.com/harper/numfacts/internal/mcp"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve number facts to LLM agents",
		Long: `Serve the get_number_fact tool over stdio using the Model Context Protocol.

An LLM client launches this as a subprocess and can then ask for a trivia,
math or date fact about a given or random number. Requests and responses
use stdin and stdout; logs are written to stderr.`,
		RunE: runMCP,
		Example: `  numfacts mcp
  numfacts mcp --verbose 2>numfacts-mcp.log

  # claude_desktop_config.json entry:
  #   "numfacts": {"command": "numfacts", "args": ["mcp"]}`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// stdout carries the protocol, so logs go to stderr
	logger := logging.New(os.Stderr, verbose, quiet)

	requester, err := newRequester(cfg, logger)
	if err != nil {
		return err
	}

	server := mcp.NewServer(requester, cfg.DefaultType, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("MCP server starting on stdio", "api", requester.BaseURL())

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}

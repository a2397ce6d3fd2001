// ABOUTME: Main entry point for the standalone number facts MCP server
// ABOUTME: Loads config, builds the requester, and serves tools over stdio
package main

import (
	"os"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/harper/numfacts/internal/config"
	"github.com/harper/numfacts/internal/facts"
	"github.com/harper/numfacts/internal/logging"
	"github.com/harper/numfacts/internal/mcp"
)

func main() {
	// stdout carries the protocol
	logger := logging.New(os.Stderr, os.Getenv("NUMFACTS_DEBUG") != "", false)

	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found", "err", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Invalid configuration", "err", err)
	}

	rc := cfg.RequesterConfig()
	rc.Logger = logger
	requester, err := facts.NewRequesterWithConfig(rc)
	if err != nil {
		logger.Fatal("Failed to initialize requester", "err", err)
	}

	server := mcp.NewServer(requester, cfg.DefaultType, logger)

	logger.Info("Number facts MCP server starting on stdio", "api", requester.BaseURL())
	if err := mcpserver.ServeStdio(server); err != nil {
		logger.Fatal("Server error", "err", err)
	}
}

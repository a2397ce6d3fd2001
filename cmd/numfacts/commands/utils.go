// ABOUTME: Shared setup and output helpers for CLI commands
// ABOUTME: Loads config, builds the requester, and prints results
package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/harper/numfacts/internal/config"
	"github.com/harper/numfacts/internal/facts"
)

// loadConfig reads .env when present, then the environment
func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func newRequester(cfg *config.Config, logger *log.Logger) (*facts.Requester, error) {
	rc := cfg.RequesterConfig()
	rc.Logger = logger
	requester, err := facts.NewRequesterWithConfig(rc)
	if err != nil {
		return nil, fmt.Errorf("initializing requester: %w", err)
	}
	return requester, nil
}

// printResult writes res in the given output format
func printResult(w io.Writer, res *facts.Result, format string) error {
	if format == "json" {
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}

	_, err := fmt.Fprintf(w, "Число: %s\nТип факта: %s\nСлучайное число: %s\n\n%s\n",
		res.Number, res.Type, yesNo(res.Random), res.Text)
	return err
}

func yesNo(b bool) string {
	if b {
		return "Да"
	}
	return "Нет"
}

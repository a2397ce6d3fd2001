// ABOUTME: UI command launches the interactive number facts viewer
// ABOUTME: Builds one session and runs the Bubble Tea program until the user quits
package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/harper/numfacts/internal/config"
	"github.com/harper/numfacts/internal/logging"
	"github.com/harper/numfacts/internal/session"
	"github.com/harper/numfacts/internal/tui"
)

var uiAltScreen = true

// NewUICmd creates the ui command
func NewUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive viewer",
		Long: `Open the interactive viewer.

Pick a number (or tick the random box), choose trivia, math or date,
and press enter to fetch a fact. Logs go to NUMFACTS_LOG_FILE when set.

Examples:
  numfacts ui
  numfacts ui --alt-screen=false`,
		RunE: runUI,
	}

	cmd.Flags().BoolVar(&uiAltScreen, "alt-screen", true, "Run in the terminal's alternate screen")

	return cmd
}

func runUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := uiLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	requester, err := newRequester(cfg, logger)
	if err != nil {
		return err
	}

	model := tui.New(requester, session.New(cfg.DefaultType), logger)

	var opts []tea.ProgramOption
	if uiAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := tui.Run(ctx, model, opts...); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running UI: %w", err)
	}
	return nil
}

// uiLogger keeps log output off the terminal the UI is drawing on
func uiLogger(cfg *config.Config) (*log.Logger, io.Closer, error) {
	if cfg.LogFile == "" {
		return logging.Discard(), io.NopCloser(nil), nil
	}
	return logging.OpenFile(cfg.LogFile, verbose)
}

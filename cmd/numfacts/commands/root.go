// ABOUTME: Root CLI command and global flags
// ABOUTME: Wires subcommands and launches the interactive viewer by default
package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

const banner = `
███╗   ██╗██╗   ██╗███╗   ███╗███████╗ █████╗  ██████╗████████╗███████╗
████╗  ██║██║   ██║████╗ ████║██╔════╝██╔══██╗██╔════╝╚══██╔══╝██╔════╝
██╔██╗ ██║██║   ██║██╔████╔██║█████╗  ███████║██║        ██║   ███████╗
██║╚██╗██║██║   ██║██║╚██╔╝██║██╔══╝  ██╔══██║██║        ██║   ╚════██║
██║ ╚████║╚██████╔╝██║ ╚═╝ ██║██║     ██║  ██║╚██████╗   ██║   ███████║
╚═╝  ╚═══╝ ╚═════╝ ╚═╝     ╚═╝╚═╝     ╚═╝  ╚═╝ ╚═════╝   ╚═╝   ╚══════╝
`

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "numfacts",
		Short: "Interesting facts about numbers",
		Long: banner + `
Look up trivia, math and date facts about numbers from numbersapi.com.

Run without a subcommand to open the interactive viewer, or use
"numfacts get" for a one-shot lookup.`,
		SilenceUsage:      true,
		PersistentPreRunE: validateGlobalFlags,
		RunE:              runUI,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only log errors")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format: auto, text, or json")

	cmd.AddCommand(
		NewUICmd(),
		NewGetCmd(),
		NewMCPCmd(),
		NewVersionCmd(),
	)

	return cmd
}

// ExecuteContext runs the root command. Cancelling ctx stops a running
// viewer or MCP server.
func ExecuteContext(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func validateGlobalFlags(cmd *cobra.Command, args []string) error {
	if verbose && quiet {
		return fmt.Errorf("--verbose and --quiet are mutually exclusive")
	}
	switch outputFormat {
	case "auto", "text", "json":
	default:
		return fmt.Errorf("--format must be auto, text, or json, got %q", outputFormat)
	}
	return nil
}

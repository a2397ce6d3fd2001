// ABOUTME: CLI command for one-shot fact lookups
// ABOUTME: Validates the number locally, fetches once, and prints the fact
package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/numfacts/internal/facts"
	"github.com/harper/numfacts/internal/logging"
)

var (
	getType   string
	getRandom bool
)

// NewGetCmd creates the get command
func NewGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [number]",
		Short: "Fetch a single number fact",
		Long: `Fetch one fact from numbersapi.com and print it.

Examples:
  numfacts get 42
  numfacts get 3.14 --type math
  numfacts get --random --type date
  numfacts get 7 --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runGet,
	}

	cmd.Flags().StringVarP(&getType, "type", "t", "", "Fact type: trivia, math, or date (default from NUMBERS_FACT_TYPE)")
	cmd.Flags().BoolVarP(&getRandom, "random", "r", false, "Let the API pick a random number")

	return cmd
}

func runGet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := logging.New(cmd.ErrOrStderr(), verbose, quiet)
	requester, err := newRequester(cfg, logger)
	if err != nil {
		return err
	}

	factType := cfg.DefaultType
	if getType != "" {
		factType, err = facts.ParseFactType(getType)
		if err != nil {
			return err
		}
	}

	query := facts.Query{Type: factType, Random: getRandom}
	if len(args) > 0 {
		query.Number = args[0]
	}

	res, err := requester.RequestFact(cmd.Context(), query)
	if err != nil {
		logger.Debug("lookup failed", "err", err)
		return errors.New(facts.UserMessage(err))
	}

	if err := printResult(cmd.OutOrStdout(), res, outputFormat); err != nil {
		return fmt.Errorf("printing result: %w", err)
	}
	return nil
}

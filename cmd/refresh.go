package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/stockempire/tracker"
	"github.com/stockempire/tracker/advisor"
	"github.com/stockempire/tracker/renderer"
)

// refreshCmd holds the flags for the 'refresh' subcommand.
type refreshCmd struct {
	tab string
}

func (*refreshCmd) Name() string     { return "refresh" }
func (*refreshCmd) Synopsis() string { return "fetch fresh quotes once and display the portfolio" }
func (*refreshCmd) Usage() string {
	return `empire refresh [-m ALL|KR|US]

  Performs exactly one reconciliation tick: fetches the current price of every
  holding concurrently, merges the successes, and displays the updated
  portfolio. Holdings whose fetch fails keep their previous price.

`
}

func (c *refreshCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tab, "m", string(tracker.TabAll), "Market tab filter (ALL, KR or US)")
}

func (c *refreshCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tab, err := tracker.ParseTab(c.tab)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	portfolio, err := OpenPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	if portfolio.Len() == 0 {
		fmt.Println("The portfolio is empty, nothing to refresh.")
		return subcommands.ExitSuccess
	}

	reconciler := tracker.NewReconciler(portfolio, QuoteProvider())
	if err := reconciler.RefreshOnce(ctx); err != nil {
		// Partial failures are stale prices, not a failed command.
		fmt.Fprintf(os.Stderr, "Warning: some quotes could not be refreshed: %v\n", err)
	}

	report := tracker.Valuate(portfolio.Holdings(), tab)
	report.LastUpdated = reconciler.LastUpdated()
	printMarkdown(renderer.Markdown(report, renderer.Options{
		Tier:       LoadProfile().Tier,
		Commentary: advisor.Templated{}.HealthCheck(report),
	}))
	return subcommands.ExitSuccess
}

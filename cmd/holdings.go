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

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct {
	tab string
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the portfolio with P&L metrics" }
func (*holdingsCmd) Usage() string {
	return `empire holdings [-m ALL|KR|US]

  Displays the portfolio holdings with derived P&L metrics, filtered by the
  market tab. Prices are the last reconciled ones; use 'empire refresh' to
  fetch fresh quotes first.

`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tab, "m", string(tracker.TabAll), "Market tab filter (ALL, KR or US)")
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	report := tracker.Valuate(portfolio.Holdings(), tab)
	printMarkdown(renderer.Markdown(report, renderer.Options{
		Tier:       LoadProfile().Tier,
		Commentary: advisor.Templated{}.HealthCheck(report),
	}))
	return subcommands.ExitSuccess
}

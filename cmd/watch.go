package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/google/subcommands"

	"github.com/stockempire/tracker"
	"github.com/stockempire/tracker/advisor"
	"github.com/stockempire/tracker/renderer"
)

// watchCmd holds the flags for the 'watch' subcommand.
type watchCmd struct {
	tab      string
	interval time.Duration
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "refresh quotes on an interval until interrupted" }
func (*watchCmd) Usage() string {
	return `empire watch [-m ALL|KR|US] [-i <interval>]

  Runs the reconciliation loop: an immediate refresh, then one per interval,
  re-rendering the portfolio after each tick. Stop with Ctrl-C.

`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tab, "m", string(tracker.TabAll), "Market tab filter (ALL, KR or US)")
	f.DurationVar(&c.interval, "i", defaultInterval(), "Polling interval (default $EMPIRE_REFRESH)")
}

// defaultInterval resolves the polling interval: $EMPIRE_REFRESH when it parses
// as a duration, the documented default otherwise.
func defaultInterval() time.Duration {
	if v := os.Getenv("EMPIRE_REFRESH"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return tracker.DefaultInterval
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
		fmt.Println("The portfolio is empty, nothing to watch.")
		return subcommands.ExitSuccess
	}

	tier := LoadProfile().Tier
	reconciler := tracker.NewReconciler(portfolio, QuoteProvider())
	reconciler.AfterTick = func() {
		report := tracker.Valuate(portfolio.Holdings(), tab)
		report.LastUpdated = reconciler.LastUpdated()
		printMarkdown(renderer.Markdown(report, renderer.Options{
			Tier:       tier,
			Commentary: advisor.Templated{}.HealthCheck(report),
		}))
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	reconciler.Run(ctx, c.interval)

	fmt.Println("Stopped watching.")
	return subcommands.ExitSuccess
}

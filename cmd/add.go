package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/stockempire/tracker"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	symbol   string
	name     string
	quantity string
	avgPrice string
	market   string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a holding to the portfolio" }
func (*addCmd) Usage() string {
	return `empire add -s <symbol> -n <name> -q <quantity> -p <avg price> [-m <market>]

  Appends a position to the portfolio. The symbol is uppercased, the current
  price starts at the average price until the first refresh replaces it.

Usage Examples:
$ empire add -s NVDA -n "NVIDIA Corporation" -q 10 -p 185.41 -m US
$ empire add -s 005930 -n "Samsung Electronics" -q 20 -p 71200 -m KR

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Ticker symbol")
	f.StringVar(&c.name, "n", "", "Display name")
	f.StringVar(&c.quantity, "q", "", "Number of units held")
	f.StringVar(&c.avgPrice, "p", "", "Average cost basis per unit")
	f.StringVar(&c.market, "m", "US", "Market the position trades on (KR or US)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	quantity, err := decimal.NewFromString(c.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing quantity %q: %v\n", c.quantity, err)
		return subcommands.ExitUsageError
	}
	avgPrice, err := decimal.NewFromString(c.avgPrice)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing average price %q: %v\n", c.avgPrice, err)
		return subcommands.ExitUsageError
	}
	market, err := tracker.ParseMarket(c.market)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	portfolio, err := OpenPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	holding, err := portfolio.Add(c.symbol, c.name, quantity, avgPrice, market)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	fmt.Printf("Added %s (%s) to the portfolio: %s units at %s\n",
		holding.Symbol, holding.Market, holding.Quantity, holding.Price())
	return subcommands.ExitSuccess
}

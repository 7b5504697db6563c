package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/stockempire/tracker"
)

// removeCmd holds the flags for the 'remove' subcommand.
type removeCmd struct {
	yes bool
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove a holding from the portfolio" }
func (*removeCmd) Usage() string {
	return `empire remove [-y] <symbol|id>

  Removes the holding matching the given symbol or id. Removal asks for an
  explicit confirmation unless -y is passed.

`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Skip the confirmation prompt")
}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	key := f.Arg(0)
	if key == "" {
		fmt.Fprintln(os.Stderr, "Error: a symbol or id is required")
		return subcommands.ExitUsageError
	}

	portfolio, err := OpenPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	holding, ok := findHolding(portfolio, key)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no holding matches %q\n", key)
		return subcommands.ExitFailure
	}

	confirmed := c.yes
	if !confirmed {
		fmt.Printf("Remove %s (%s, %s units)? [y/N] ", holding.Symbol, holding.Market, holding.Quantity)
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		confirmed = parseConfirmation(answer)
	}

	if !portfolio.Remove(holding.ID, confirmed) {
		fmt.Println("Nothing removed.")
		return subcommands.ExitSuccess
	}
	fmt.Printf("Removed %s from the portfolio.\n", holding.Symbol)
	return subcommands.ExitSuccess
}

// findHolding resolves a user-supplied key to a holding, by id first, then by
// symbol (first match in insertion order).
func findHolding(p *tracker.Portfolio, key string) (tracker.Holding, bool) {
	if h, ok := p.Get(key); ok {
		return h, true
	}
	symbol := strings.ToUpper(strings.TrimSpace(key))
	for _, h := range p.Holdings() {
		if h.Symbol == symbol {
			return h, true
		}
	}
	return tracker.Holding{}, false
}

// parseConfirmation interprets a prompt answer; only an explicit yes confirms.
func parseConfirmation(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

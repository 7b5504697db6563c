// Package cmd implements the empire CLI to manage a Stock Empire portfolio.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/stockempire/tracker"
	"github.com/stockempire/tracker/quoteapi"
)

// Commands lists all subcommands. A main package registers them on a
// commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&removeCmd{},
	&holdingsCmd{},
	&refreshCmd{},
	&watchCmd{},
	&tierCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var homeFlag = flag.String("home", "", "Directory holding the portfolio and profile files (default $EMPIRE_HOME or ~/.empire)")
var quoteFlag = flag.String("quote-url", "", "Base URL of the stock price endpoint (default $EMPIRE_QUOTE_URL)")

// home resolves the app directory. Resolved at call time, not init time, so a
// .env loaded by main is honored.
func home() string {
	if *homeFlag != "" {
		return *homeFlag
	}
	if v := os.Getenv("EMPIRE_HOME"); v != "" {
		return v
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return ".empire"
	}
	return filepath.Join(dir, ".empire")
}

func quoteURL() string {
	if *quoteFlag != "" {
		return *quoteFlag
	}
	if v := os.Getenv("EMPIRE_QUOTE_URL"); v != "" {
		return v
	}
	return quoteapi.DefaultBaseURL
}

// OpenPortfolio hydrates the portfolio from the app home directory.
func OpenPortfolio() (*tracker.Portfolio, error) {
	return tracker.OpenPortfolio(tracker.NewStore(home()))
}

// LoadProfile reads the user profile; absent or damaged means FREE tier.
func LoadProfile() tracker.Profile {
	return tracker.LoadProfile(home())
}

// QuoteProvider returns the configured quote source adapter.
func QuoteProvider() tracker.QuoteProvider {
	return quoteapi.New(quoteURL())
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "dark")
	if err != nil {
		// plain text is a perfectly fine fallback
		fmt.Println(md)
		return
	}
	fmt.Println(out)
}

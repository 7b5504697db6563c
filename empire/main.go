package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"

	"github.com/stockempire/tracker/cmd"
)

func main() {
	// A .env next to the binary may override EMPIRE_HOME and EMPIRE_QUOTE_URL;
	// its absence is the normal case.
	godotenv.Load()

	// Shell completion for subcommand names (install with COMP_INSTALL=1 empire).
	sub := make(map[string]*complete.Command)
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	(&complete.Command{Sub: sub}).Complete("empire")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

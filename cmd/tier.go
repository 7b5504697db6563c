package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/stockempire/tracker"
)

// tierCmd holds the flags for the 'tier' subcommand.
type tierCmd struct {
	set   string
	name  string
	email string
}

func (*tierCmd) Name() string     { return "tier" }
func (*tierCmd) Synopsis() string { return "show or change the subscription tier" }
func (*tierCmd) Usage() string {
	return `empire tier [-set FREE|VIP|VVIP] [-name <name>] [-email <email>]

  Without flags, shows the current profile and what each tier unlocks.
  With -set, updates the stored profile.

`
}

func (c *tierCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.set, "set", "", "Tier to switch the profile to (FREE, VIP or VVIP)")
	f.StringVar(&c.name, "name", "", "Display name to store on the profile")
	f.StringVar(&c.email, "email", "", "Email to store on the profile")
}

func (c *tierCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	profile := LoadProfile()

	if c.set == "" && c.name == "" && c.email == "" {
		printTier(profile)
		return subcommands.ExitSuccess
	}

	if c.set != "" {
		tier, err := tracker.ParseTier(c.set)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		profile.Tier = tier
	}
	if c.name != "" {
		profile.Name = c.name
	}
	if c.email != "" {
		profile.Email = c.email
	}

	if err := tracker.SaveProfile(home(), profile); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving profile: %v\n", err)
		return subcommands.ExitFailure
	}
	printTier(profile)
	return subcommands.ExitSuccess
}

func printTier(profile tracker.Profile) {
	who := profile.Name
	if who == "" {
		who = "anonymous"
	}
	fmt.Printf("Profile: %s (%s)\n", who, profile.Tier)
	for _, section := range []struct {
		name     string
		requires tracker.Tier
	}{
		{"Portfolio tracking", tracker.Free},
		{"AI portfolio health check", tracker.VIP},
		{"Deep-dive reports and target prices", tracker.VVIP},
	} {
		state := "locked"
		if profile.Tier.Allows(section.requires) {
			state = "unlocked"
		}
		fmt.Printf("  %-38s %-4s  %s\n", section.name, section.requires, state)
	}
}

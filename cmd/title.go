package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type titleCmd struct {
	subtitle string
}

func (*titleCmd) Name() string     { return "title" }
func (*titleCmd) Synopsis() string { return "set the report title and subtitle" }
func (*titleCmd) Usage() string {
	return `wl title [-sub <subtitle>] [<title>]

  Sets the report title, and optionally the subtitle shown under it.
  Called with no arguments, prints the current values.

Usage Examples:
$ wl title "My Targets" -sub "H2 2025"
`
}

func (c *titleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.subtitle, "sub", "", "Subtitle shown under the report title.")
}

func (c *titleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, _, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if f.NArg() == 0 && c.subtitle == "" {
		title, err := store.Title()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		subtitle, err := store.Subtitle()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("title: %s\nsubtitle: %s\n", title, subtitle)
		return subcommands.ExitSuccess
	}

	if f.NArg() > 0 {
		if err := store.SetTitle(f.Arg(0)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if c.subtitle != "" {
		if err := store.SetSubtitle(c.subtitle); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/watchlist"
	"github.com/etnz/watchlist/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	sort string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "render the watchlist report" }
func (*listCmd) Usage() string {
	return `wl list [-sort <mode>]

  Renders the watchlist as a report with an active and a completed group.
  Sorting is presentation only; the stored order (newest first) is never
  changed.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sort, "sort", "", "Sort order: created (default), progress or progress-asc.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	mode, err := watchlist.ParseSortMode(c.sort)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	store, _, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	list, err := store.LoadTrackers()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
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
	printMarkdown(renderer.WatchlistMarkdown(list, title, subtitle, mode))
	return subcommands.ExitSuccess
}

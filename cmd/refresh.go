package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/watchlist"
	"github.com/google/subcommands"
)

type refreshCmd struct {
	stale bool
}

func (*refreshCmd) Name() string     { return "refresh" }
func (*refreshCmd) Synopsis() string { return "fetch current prices for active trackers" }
func (*refreshCmd) Usage() string {
	return `wl refresh [-stale]

  Fetches current prices for every active tracker in one batched lookup
  and saves the result. With -stale, only trackers whose last fetch
  attempt is more than an hour old are refreshed.
`
}

func (c *refreshCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.stale, "stale", false, "Refresh only trackers with a stale price.")
}

func (c *refreshCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, cfg, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	list, err := store.LoadTrackers()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	quoter, err := newQuoter(ctx, cfg, store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	rec := watchlist.NewReconciler(list, quoter)
	var refreshErr error
	refreshed := len(list.Active())
	if c.stale {
		refreshed, refreshErr = rec.RefreshStale(ctx)
		if refreshed == 0 {
			fmt.Println("Nothing stale to refresh.")
			return subcommands.ExitSuccess
		}
	} else {
		refreshErr = rec.RefreshAll(ctx)
	}

	// A failed round has already marked the trackers; save that state too.
	if err := store.SaveTrackers(list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if refreshErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", refreshErr)
		return subcommands.ExitFailure
	}
	fmt.Printf("Refreshed %d trackers.\n", refreshed)
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/watchlist"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addCmd struct {
	currency string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "track a new symbol against a start/target price range" }
func (*addCmd) Usage() string {
	return `wl add [-c <currency>] <symbol> <start-price> <target-price>

  Creates a tracker for the symbol and immediately fetches its current
  price. The target may be below the start for a bearish goal.

Usage Examples:
$ wl add AAPL 180 250
$ wl add -c EUR BTC-EUR 60000 100000
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", watchlist.DefaultCurrency, "Display currency code for the tracker prices.")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintf(os.Stderr, "Error: expected <symbol> <start-price> <target-price>\n")
		return subcommands.ExitUsageError
	}
	start, err := decimal.NewFromString(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid start price %q: %v\n", f.Arg(1), err)
		return subcommands.ExitUsageError
	}
	target, err := decimal.NewFromString(f.Arg(2))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid target price %q: %v\n", f.Arg(2), err)
		return subcommands.ExitUsageError
	}

	tracker, err := watchlist.NewTracker(f.Arg(0), start, target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	tracker.Currency = c.currency

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
	list.Add(tracker)

	// Fetch the new symbol right away. A lookup failure is recorded on the
	// tracker and reported, but the tracker is saved either way.
	if quoter, err := newQuoter(ctx, cfg, store); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: price not fetched: %v\n", err)
	} else {
		rec := watchlist.NewReconciler(list, quoter)
		if err := rec.Refresh(ctx, []*watchlist.Tracker{tracker}); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: price not fetched: %v\n", err)
		}
	}

	if err := store.SaveTrackers(list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Tracking %s (%s) from %s toward %s\n", tracker.Symbol, tracker.ID, tracker.StartPrice, tracker.TargetPrice)
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/etnz/watchlist"
	"github.com/google/subcommands"
)

type watchCmd struct {
	interval time.Duration
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "keep refreshing stale trackers until interrupted" }
func (*watchCmd) Usage() string {
	return `wl watch [-every <interval>]

  Runs a periodic sweep: on every tick the trackers whose last fetch
  attempt is more than an hour old are refreshed and the store is saved.
  Stops on Ctrl-C.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&c.interval, "every", time.Minute, "Sweep interval.")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, cfg, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	quoter, err := newQuoter(ctx, cfg, store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	log.Printf("watching, sweep every %s", c.interval)
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	// First sweep immediately, then on every tick.
	c.sweep(ctx, store, quoter)
	for {
		select {
		case <-ctx.Done():
			log.Println("watch stopped")
			return subcommands.ExitSuccess
		case <-ticker.C:
			c.sweep(ctx, store, quoter)
		}
	}
}

// sweep reloads the list, refreshes what is stale and saves. Reloading on
// every tick picks up edits made by other wl invocations while watching.
func (c *watchCmd) sweep(ctx context.Context, store *watchlist.Store, quoter watchlist.Quoter) {
	list, err := store.LoadTrackers()
	if err != nil {
		log.Printf("sweep skipped: %v", err)
		return
	}
	rec := watchlist.NewReconciler(list, quoter)
	n, err := rec.RefreshStale(ctx)
	if errors.Is(err, watchlist.ErrBusy) {
		log.Println("sweep skipped: refresh already in flight")
		return
	}
	if n == 0 {
		return
	}
	if err != nil {
		log.Printf("sweep: %v", err)
	} else {
		log.Printf("refreshed %d stale trackers", n)
	}
	if err := store.SaveTrackers(list); err != nil {
		log.Printf("sweep: %v", err)
	}
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type doneCmd struct {
	undo bool
}

func (*doneCmd) Name() string     { return "done" }
func (*doneCmd) Synopsis() string { return "mark a tracker completed (or active again with -undo)" }
func (*doneCmd) Usage() string {
	return `wl done [-undo] <id>

  Marks the tracker as completed: it moves to the completed group and is
  excluded from automatic refreshes. -undo reactivates it.
`
}

func (c *doneCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.undo, "undo", false, "Reactivate a completed tracker.")
}

func (c *doneCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected <id>\n")
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
	t := list.Get(f.Arg(0))
	if t == nil {
		fmt.Fprintf(os.Stderr, "Error: no tracker with id %q\n", f.Arg(0))
		return subcommands.ExitFailure
	}
	t.Completed = !c.undo
	if err := store.SaveTrackers(list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if t.Completed {
		fmt.Printf("Completed %s (%s)\n", t.Symbol, t.ID)
	} else {
		fmt.Printf("Reactivated %s (%s)\n", t.Symbol, t.ID)
	}
	return subcommands.ExitSuccess
}

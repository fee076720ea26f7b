package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/watchlist"
	"github.com/google/subcommands"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the tracker list from a JSON file" }
func (*importCmd) Usage() string {
	return `wl import <file>

  Replaces the whole tracker list with the file's content, a JSON array as
  produced by "wl export". Any invalid element rejects the whole file and
  leaves the current watchlist untouched. Use "-" to read stdin.
`
}

func (*importCmd) SetFlags(f *flag.FlagSet) {}

func (*importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected <file>\n")
		return subcommands.ExitUsageError
	}

	in := os.Stdin
	if name := f.Arg(0); name != "-" {
		var err error
		in, err = os.Open(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		defer in.Close()
	}

	list, err := watchlist.Import(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: import rejected: %v\n", err)
		return subcommands.ExitFailure
	}

	store, _, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := store.SaveTrackers(list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d trackers.\n", list.Len())
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type keyCmd struct{}

func (*keyCmd) Name() string     { return "key" }
func (*keyCmd) Synopsis() string { return "persist the Gemini API key in the store" }
func (*keyCmd) Usage() string {
	return `wl key <api-key>

  Saves the Gemini API key in the store directory. The GEMINI_API_KEY
  environment variable, when set, takes precedence over the saved key.
`
}

func (*keyCmd) SetFlags(f *flag.FlagSet) {}

func (*keyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected <api-key>\n")
		return subcommands.ExitUsageError
	}
	store, _, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := store.SetAPIKey(f.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("API key saved in %s\n", store.Dir())
	return subcommands.ExitSuccess
}

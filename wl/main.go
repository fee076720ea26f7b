package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/watchlist/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: when invoked by the shell's completion hook this
	// prints candidates and exits, otherwise it is a no-op.
	completion().Complete("wl")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	sorts := predict.Set{"created", "progress", "progress-asc"}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"store-dir": predict.Dirs("*"),
		},
		Sub: map[string]*complete.Command{
			"add": {Flags: map[string]complete.Predictor{"c": predict.Something}},
			"rm":  {},
			"done": {Flags: map[string]complete.Predictor{
				"undo": predict.Nothing,
			}},
			"list": {Flags: map[string]complete.Predictor{"sort": sorts}},
			"refresh": {Flags: map[string]complete.Predictor{
				"stale": predict.Nothing,
			}},
			"watch":  {Flags: map[string]complete.Predictor{"every": predict.Something}},
			"title":  {Flags: map[string]complete.Predictor{"sub": predict.Something}},
			"key":    {},
			"export": {},
			"import": {Args: predict.Files("*.json")},
			"topic":  {Args: predict.Set{"readme", "symbols", "refresh", "import", "*"}},
		},
	}
}

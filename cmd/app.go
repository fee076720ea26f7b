// Package cmd implements the CLI application to manage a watchlist.
package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/watchlist"
	"github.com/google/subcommands"
)

// Register registers all subcommands on the commander.
// A main package calls Register(), then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "trackers")
	c.Register(&rmCmd{}, "trackers")
	c.Register(&doneCmd{}, "trackers")

	c.Register(&listCmd{}, "reports")
	c.Register(&titleCmd{}, "reports")

	c.Register(&refreshCmd{}, "prices")
	c.Register(&watchCmd{}, "prices")
	c.Register(&keyCmd{}, "prices")

	c.Register(&exportCmd{}, "data")
	c.Register(&importCmd{}, "data")

	c.Register(&topicCmd{}, "documentation")
}

// As a CLI application it has a very short lived lifecycle, so it is ok to
// use global variables for the shared flags.

var storeDir = flag.String("store-dir", "", "Path to the watchlist store directory (overrides config)")

// loadConfig resolves the effective configuration, letting the -store-dir
// flag override the configured directory.
func loadConfig() (*watchlist.Config, error) {
	cfg, err := watchlist.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("could not load configuration: %w", err)
	}
	if *storeDir != "" {
		cfg.StoreDir = *storeDir
	}
	return cfg, nil
}

// openStore opens the store directory named by the configuration,
// creating it on first use.
func openStore() (*watchlist.Store, *watchlist.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	s, err := watchlist.OpenStore(cfg.StoreDir)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open store %q: %w", cfg.StoreDir, err)
	}
	return s, cfg, nil
}

// newQuoter builds the Gemini quoter from the configured credential.
func newQuoter(ctx context.Context, cfg *watchlist.Config, s *watchlist.Store) (*watchlist.GeminiQuoter, error) {
	key, err := cfg.Credential(s)
	if err != nil {
		return nil, err
	}
	if key == "" {
		return nil, fmt.Errorf("no Gemini API key configured, set GEMINI_API_KEY or run `wl key`")
	}
	return watchlist.NewGeminiQuoter(ctx, key, cfg.Model)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

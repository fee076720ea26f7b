package watchlist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// This file handles the import/export format: the full tracker list as one
// indented JSON array, meant for backups and for moving a watchlist between
// machines.

// Export writes the whole tracker list to w as indented JSON.
func Export(w io.Writer, list *Watchlist) error {
	out := make([]jtracker, 0, list.Len())
	for _, t := range list.All() {
		out = append(out, toJTracker(t))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("cannot export watchlist: %w", err)
	}
	return nil
}

// Import reads a full tracker list from r. The top-level value must be a
// JSON array where every element has a non-empty id, a non-empty symbol and
// a defined startPrice; any parse or validation failure rejects the whole
// file, so the caller's existing state stays untouched. On success the
// returned list wholesale-replaces the previous one.
func Import(r io.Reader) (*Watchlist, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read import file: %w", err)
	}

	var jtrackers []jtracker
	if err := json.Unmarshal(data, &jtrackers); err != nil {
		return nil, fmt.Errorf("import file is not a JSON array of trackers: %w", err)
	}

	// Validate every element so the user sees all problems at once, then
	// reject the whole file if anything failed.
	list := NewWatchlist()
	var errs []error
	for i, j := range jtrackers {
		switch {
		case j.ID == "":
			errs = append(errs, fmt.Errorf("import element %d: missing id", i))
		case strings.TrimSpace(j.Symbol) == "":
			errs = append(errs, fmt.Errorf("import element %d: missing symbol", i))
		case j.StartPrice == nil:
			errs = append(errs, fmt.Errorf("import element %d (%s): missing startPrice", i, j.Symbol))
		default:
			list.trackers = append(list.trackers, j.tracker())
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return list, nil
}

package watchlist

import (
	"fmt"
	"slices"
)

// Watchlist holds the ordered list of trackers. New trackers are prepended,
// so creation order is newest first. It is not safe for concurrent use: all
// mutation is expected to happen on a single goroutine, the refresh gate in
// Reconciler being the only cross-goroutine coordination point.
type Watchlist struct {
	trackers []*Tracker
}

// NewWatchlist returns an empty watchlist.
func NewWatchlist() *Watchlist {
	return &Watchlist{trackers: make([]*Tracker, 0)}
}

// Len returns the number of trackers.
func (w *Watchlist) Len() int { return len(w.trackers) }

// Add prepends a tracker so the newest appears first in creation order.
func (w *Watchlist) Add(t *Tracker) {
	w.trackers = append([]*Tracker{t}, w.trackers...)
}

// Get returns the tracker with the given id, or nil.
func (w *Watchlist) Get(id string) *Tracker {
	for _, t := range w.trackers {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Remove deletes the tracker with the given id. It returns an error when no
// such tracker exists.
func (w *Watchlist) Remove(id string) error {
	for i, t := range w.trackers {
		if t.ID == id {
			w.trackers = slices.Delete(w.trackers, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("no tracker with id %q", id)
}

// Replace swaps the whole tracker list, used by import.
func (w *Watchlist) Replace(trackers []*Tracker) {
	w.trackers = trackers
}

// All returns the trackers in stored (creation) order. The slice is shared;
// callers must not reorder it.
func (w *Watchlist) All() []*Tracker { return w.trackers }

// Active returns the non-completed trackers in stored order.
func (w *Watchlist) Active() []*Tracker {
	var out []*Tracker
	for _, t := range w.trackers {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}

// Completed returns the completed trackers in stored order.
func (w *Watchlist) Completed() []*Tracker {
	var out []*Tracker
	for _, t := range w.trackers {
		if t.Completed {
			out = append(out, t)
		}
	}
	return out
}

// SortMode selects a presentation order for trackers. Sorting never mutates
// the stored order.
type SortMode int

const (
	// SortByCreation keeps the stored order, newest tracker first.
	SortByCreation SortMode = iota
	// SortByProgressDesc orders by progress toward the target, highest
	// first; trackers with no resolved price sink to the bottom.
	SortByProgressDesc
	// SortByProgressAsc orders by progress, lowest first; trackers with no
	// resolved price come first, as "no data" ranks below any real value.
	SortByProgressAsc
)

// ParseSortMode maps a user-facing mode name to a SortMode.
func ParseSortMode(s string) (SortMode, error) {
	switch s {
	case "", "created":
		return SortByCreation, nil
	case "progress", "progress-desc":
		return SortByProgressDesc, nil
	case "progress-asc":
		return SortByProgressAsc, nil
	}
	return SortByCreation, fmt.Errorf("unknown sort mode %q (want created, progress or progress-asc)", s)
}

// Sorted returns a copy of the tracker list in the given presentation order.
func (w *Watchlist) Sorted(mode SortMode) []*Tracker {
	out := slices.Clone(w.trackers)
	if mode == SortByCreation {
		return out
	}
	slices.SortStableFunc(out, func(a, b *Tracker) int {
		c := compareProgress(a, b)
		if mode == SortByProgressDesc {
			return -c
		}
		return c
	})
	return out
}

// compareProgress orders trackers by progress, ranking "no resolved price"
// below every real progress value.
func compareProgress(a, b *Tracker) int {
	pa, oka := a.Progress()
	pb, okb := b.Progress()
	switch {
	case !oka && !okb:
		return 0
	case !oka:
		return -1
	case !okb:
		return 1
	case pa < pb:
		return -1
	case pa > pb:
		return 1
	}
	return 0
}

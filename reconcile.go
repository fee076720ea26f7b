package watchlist

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"
)

// ErrBusy is returned by Refresh when another refresh round is still in
// flight. The policy is an explicit rejection: callers either report it to
// the user or, for periodic sweeps, skip the tick and pick the work up on
// the next one.
var ErrBusy = errors.New("a refresh is already in flight")

// Failure messages recorded on trackers. They are user-facing state, shown
// in reports until the next successful fetch overwrites them.
const (
	msgUnavailable  = "symbol not found or data unavailable"
	msgUpdateFailed = "update failed"
)

// Reconciler drives quote rounds and merges results back into the
// watchlist. It owns the single refresh slot: at most one round trip is ever
// outstanding, whichever call site (manual refresh, new tracker, staleness
// sweep) triggered it.
type Reconciler struct {
	list   *Watchlist
	quoter Quoter
	busy   atomic.Bool

	// now is replaceable for tests.
	now func() time.Time
}

// NewReconciler returns a reconciler merging quotes from quoter into list.
func NewReconciler(list *Watchlist, quoter Quoter) *Reconciler {
	return &Reconciler{list: list, quoter: quoter, now: time.Now}
}

// Refresh fetches quotes for the given trackers and merges the results.
// Trackers outside the given subset are never touched. It returns ErrBusy
// when a round is already in flight, and the batch error when the whole
// round trip failed; in the latter case every requested tracker has been
// marked failed already, so the caller only needs to report.
func (r *Reconciler) Refresh(ctx context.Context, trackers []*Tracker) error {
	if len(trackers) == 0 {
		return nil
	}
	if !r.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer r.busy.Store(false)

	// One round trip serves every tracker sharing a symbol.
	symbols := make([]string, 0, len(trackers))
	requested := make(map[string]bool, len(trackers))
	for _, t := range trackers {
		if !requested[t.Symbol] {
			requested[t.Symbol] = true
			symbols = append(symbols, t.Symbol)
		}
	}

	quotes, err := r.quoter.Quotes(ctx, symbols)
	now := r.now()
	if err != nil {
		r.markFailed(requested, now, msgUpdateFailed)
		return fmt.Errorf("refresh of %d symbols: %w", len(symbols), err)
	}

	bySymbol := make(map[string]Quote, len(quotes))
	for _, q := range quotes {
		bySymbol[q.Symbol] = q
	}
	r.merge(requested, bySymbol, now)
	return nil
}

// RefreshAll refreshes every non-completed tracker.
func (r *Reconciler) RefreshAll(ctx context.Context) error {
	return r.Refresh(ctx, r.list.Active())
}

// RefreshStale refreshes the trackers that qualify for an automatic refresh
// right now. It returns the number of stale trackers found along with the
// refresh outcome.
func (r *Reconciler) RefreshStale(ctx context.Context) (int, error) {
	now := r.now()
	var stale []*Tracker
	for _, t := range r.list.All() {
		if t.Stale(now) {
			stale = append(stale, t)
		}
	}
	return len(stale), r.Refresh(ctx, stale)
}

// merge applies a quote round to every tracker whose symbol was requested.
// A resolved quote overwrites price, name, attribution and timestamp and
// clears the error; an unresolved one only stamps the attempt and records
// the unavailable message, leaving any previously known price untouched.
func (r *Reconciler) merge(requested map[string]bool, bySymbol map[string]Quote, now time.Time) {
	for _, t := range r.list.All() {
		if !requested[t.Symbol] {
			continue
		}
		q, ok := bySymbol[t.Symbol]
		if !ok || !q.Resolved() {
			t.LastUpdated = now
			t.Err = msgUnavailable
			continue
		}
		t.CurrentPrice = q.Price
		if q.Name != "" {
			t.CompanyName = q.Name
		}
		t.LastUpdated = now
		t.SourceURL = q.SourceURL
		t.SourceTitle = q.SourceTitle
		t.Err = ""
	}
}

// markFailed stamps a batch-level failure on every tracker whose symbol was
// requested, bounding the retry frequency without losing known prices.
func (r *Reconciler) markFailed(requested map[string]bool, now time.Time, msg string) {
	for _, t := range r.list.All() {
		if !requested[t.Symbol] {
			continue
		}
		t.LastUpdated = now
		t.Err = msg
	}
}

package watchlist

import (
	"testing"
)

func TestWatchlistAddPrepends(t *testing.T) {
	w := NewWatchlist()
	first, _ := NewTracker("AAPL", d("100"), d("150"))
	second, _ := NewTracker("MSFT", d("300"), d("400"))
	w.Add(first)
	w.Add(second)

	if w.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", w.Len())
	}
	if w.All()[0].Symbol != "MSFT" {
		t.Errorf("newest tracker is %q, want it prepended (MSFT first)", w.All()[0].Symbol)
	}
}

func TestWatchlistRemove(t *testing.T) {
	w := NewWatchlist()
	tr, _ := NewTracker("AAPL", d("100"), d("150"))
	w.Add(tr)

	if err := w.Remove("nope"); err == nil {
		t.Error("Remove() of unknown id did not fail")
	}
	if err := w.Remove(tr.ID); err != nil {
		t.Errorf("Remove() unexpected error: %v", err)
	}
	if w.Len() != 0 {
		t.Errorf("Len() = %d after removal, want 0", w.Len())
	}
}

func TestWatchlistGroups(t *testing.T) {
	w := NewWatchlist()
	active, _ := NewTracker("AAPL", d("100"), d("150"))
	done, _ := NewTracker("MSFT", d("300"), d("400"))
	done.Completed = true
	w.Add(active)
	w.Add(done)

	if got := len(w.Active()); got != 1 {
		t.Errorf("Active() returned %d trackers, want 1", got)
	}
	if got := len(w.Completed()); got != 1 {
		t.Errorf("Completed() returned %d trackers, want 1", got)
	}
}

// progressTracker builds a tracker whose progress is the given percentage,
// or has no resolved price when pct is empty.
func progressTracker(symbol, pct string) *Tracker {
	tr := &Tracker{ID: symbol, Symbol: symbol, StartPrice: d("0"), TargetPrice: d("100")}
	if pct != "" {
		tr.CurrentPrice = nd(pct)
	}
	return tr
}

func TestWatchlistSorted(t *testing.T) {
	w := NewWatchlist()
	// prepended, so stored order is CCC, BBB, AAA
	w.Add(progressTracker("AAA", "10"))
	w.Add(progressTracker("BBB", "")) // no resolved price
	w.Add(progressTracker("CCC", "90"))

	testCases := []struct {
		name string
		mode SortMode
		want []string
	}{
		{"creation keeps stored order", SortByCreation, []string{"CCC", "BBB", "AAA"}},
		{"descending sinks the priceless tracker", SortByProgressDesc, []string{"CCC", "AAA", "BBB"}},
		{"ascending floats the priceless tracker", SortByProgressAsc, []string{"BBB", "AAA", "CCC"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := w.Sorted(tc.mode)
			for i, want := range tc.want {
				if got[i].Symbol != want {
					t.Errorf("Sorted()[%d] = %q, want %q", i, got[i].Symbol, want)
				}
			}
			// sorting is presentation only
			if w.All()[0].Symbol != "CCC" {
				t.Error("Sorted() mutated the stored order")
			}
		})
	}
}

func TestParseSortMode(t *testing.T) {
	if _, err := ParseSortMode("bogus"); err == nil {
		t.Error("ParseSortMode() accepted an unknown mode")
	}
	if mode, err := ParseSortMode(""); err != nil || mode != SortByCreation {
		t.Errorf("ParseSortMode(\"\") = %v, %v, want creation order", mode, err)
	}
	if mode, err := ParseSortMode("progress"); err != nil || mode != SortByProgressDesc {
		t.Errorf("ParseSortMode(progress) = %v, %v, want progress descending", mode, err)
	}
}

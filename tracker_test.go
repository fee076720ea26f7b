package watchlist

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func nd(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d(s), Valid: true}
}

func TestNewTracker(t *testing.T) {
	tr, err := NewTracker("  aapl ", d("100"), d("150"))
	if err != nil {
		t.Fatalf("NewTracker() unexpected error: %v", err)
	}
	if tr.Symbol != "AAPL" {
		t.Errorf("NewTracker() symbol = %q, want normalized %q", tr.Symbol, "AAPL")
	}
	if tr.ID == "" {
		t.Error("NewTracker() did not assign an id")
	}
	if tr.Currency != DefaultCurrency {
		t.Errorf("NewTracker() currency = %q, want %q", tr.Currency, DefaultCurrency)
	}

	if _, err := NewTracker("   ", d("1"), d("2")); err == nil {
		t.Error("NewTracker() accepted an empty symbol")
	}
}

func TestTrackerStale(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		updated   time.Time
		completed bool
		want      bool
	}{
		{"never fetched", time.Time{}, false, true},
		{"one hour and one millisecond ago", now.Add(-3600001 * time.Millisecond), false, true},
		{"just under one hour ago", now.Add(-3599999 * time.Millisecond), false, false},
		{"five minutes ago", now.Add(-5 * time.Minute), false, false},
		{"completed and never fetched", time.Time{}, true, false},
		{"completed and old", now.Add(-48 * time.Hour), true, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tr := &Tracker{Symbol: "AAPL", LastUpdated: tc.updated, Completed: tc.completed}
			if got := tr.Stale(now); got != tc.want {
				t.Errorf("Stale() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTrackerProgress(t *testing.T) {
	testCases := []struct {
		name    string
		start   string
		target  string
		current decimal.NullDecimal
		want    Percent
		wantOK  bool
	}{
		{"no price yet", "100", "200", decimal.NullDecimal{}, 0, false},
		{"half way up", "100", "200", nd("150"), 50, true},
		{"at target", "100", "200", nd("200"), 100, true},
		{"overshoot", "100", "200", nd("250"), 150, true},
		{"bearish half way", "200", "100", nd("150"), 50, true},
		{"moving against a bearish goal", "200", "100", nd("220"), -20, true},
		{"zero width range", "100", "100", nd("150"), 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tr := &Tracker{StartPrice: d(tc.start), TargetPrice: d(tc.target), CurrentPrice: tc.current}
			got, ok := tr.Progress()
			if ok != tc.wantOK {
				t.Fatalf("Progress() ok = %v, want %v", ok, tc.wantOK)
			}
			if ok && !got.Equal(tc.want) {
				t.Errorf("Progress() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPercentBar(t *testing.T) {
	testCases := []struct {
		name  string
		p     Percent
		width int
		want  string
	}{
		{"empty", 0, 4, "░░░░"},
		{"half", 50, 4, "██░░"},
		{"full", 100, 4, "████"},
		{"clamped low", -50, 4, "░░░░"},
		{"clamped high", 400, 4, "████"},
		{"zero width", 50, 0, ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.Bar(tc.width); got != tc.want {
				t.Errorf("Bar(%d) = %q, want %q", tc.width, got, tc.want)
			}
		})
	}
}

package watchlist

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// staleAfter is the minimum delay between two automatic fetch attempts for
// the same tracker. It throttles on the last attempt, success or failure
// alike, so a bad symbol cannot cause a hot retry loop.
const staleAfter = time.Hour

// DefaultCurrency is assumed when a tracker does not declare one.
const DefaultCurrency = "USD"

// Tracker is one instrument the user follows: a symbol, the start/target
// price range defining the tracked movement, and the last fetched live-price
// state. The target may be above or below the start (bullish or bearish
// goal).
type Tracker struct {
	// ID is an opaque unique identifier, generated at creation and stable
	// for the tracker's lifetime.
	ID string
	// Symbol is the user-supplied ticker, normalized to uppercase at
	// creation and immutable afterwards.
	Symbol string

	StartPrice  decimal.Decimal
	TargetPrice decimal.Decimal

	// CurrentPrice is the last known price. Invalid until a fetch succeeds.
	CurrentPrice decimal.NullDecimal
	// CompanyName is the best-known display name, overwritten only when a
	// fetch returns a non-empty one.
	CompanyName string
	// Currency is the display currency code for prices.
	Currency string

	// LastUpdated is the time of the most recent fetch attempt, set on
	// success and on failure alike.
	LastUpdated time.Time
	// SourceURL and SourceTitle attribute the data origin of the last
	// successful fetch. They are only ever overwritten by the next success,
	// never cleared on failure.
	SourceURL   string
	SourceTitle string
	// Err holds the failure message of the most recent fetch attempt, empty
	// after a success.
	Err string

	// Completed excludes the tracker from automatic refresh and from the
	// active display group.
	Completed bool
}

// NewTracker creates a tracker for the given symbol and price range.
// The symbol is trimmed and uppercased; it must not be empty.
func NewTracker(symbol string, start, target decimal.Decimal) (*Tracker, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, fmt.Errorf("tracker symbol cannot be empty")
	}
	return &Tracker{
		ID:          newID(),
		Symbol:      symbol,
		StartPrice:  start,
		TargetPrice: target,
		Currency:    DefaultCurrency,
	}, nil
}

// newID returns a fresh opaque tracker identifier.
func newID() string {
	var b [8]byte
	// rand.Read never fails on supported platforms.
	rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// Stale reports whether the tracker qualifies for an automatic refresh at
// the given instant: it is not completed, and either was never fetched or
// its last attempt is more than an hour old.
func (t *Tracker) Stale(now time.Time) bool {
	if t.Completed {
		return false
	}
	return t.LastUpdated.IsZero() || now.Sub(t.LastUpdated) > staleAfter
}

// Progress returns how far the current price has moved from the start price
// toward the target, as a percentage. The second return is false when no
// price has been resolved yet. A zero-width start/target range yields 0.
func (t *Tracker) Progress() (Percent, bool) {
	if !t.CurrentPrice.Valid {
		return 0, false
	}
	span := t.TargetPrice.Sub(t.StartPrice)
	if span.IsZero() {
		return 0, true
	}
	p := t.CurrentPrice.Decimal.Sub(t.StartPrice).Div(span).Mul(decimal.NewFromInt(100))
	return Percent(p.InexactFloat64()), true
}

// Percent is a percentage value, e.g. Percent(42.5) renders as "42.5%".
type Percent float64

// Equal compares two percentages with a fixed precision, good enough for
// display values derived from float arithmetic.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	diff := float64(p - q)
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.1f%%", float64(p))
}

// Bar renders the percentage as a fixed-width text gauge, clamped to
// [0,100]. Used by the report renderer.
func (p Percent) Bar(width int) string {
	if width <= 0 {
		return ""
	}
	v := float64(p)
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	filled := int(v/100*float64(width) + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

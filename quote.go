package watchlist

import (
	"context"

	"github.com/shopspring/decimal"
)

// Quote is the per-symbol outcome of one fetch round. A quote is always
// emitted for every requested symbol; an unresolved symbol carries an
// invalid Price rather than being omitted.
type Quote struct {
	// Symbol is the requested symbol this quote answers for.
	Symbol string
	// Price is the resolved price; invalid when the symbol could not be
	// resolved from the response.
	Price decimal.NullDecimal
	// Name is the resolved display name, or the symbol itself when the
	// response carried none.
	Name string
	// SourceURL and SourceTitle attribute the whole batch: they come from
	// the first grounding citation with a web reference, shared by every
	// quote of the round.
	SourceURL   string
	SourceTitle string
}

// Resolved reports whether the quote carries a usable price.
func (q Quote) Resolved() bool {
	return q.Price.Valid && q.Price.Decimal.IsPositive()
}

// Quoter resolves current prices for a batch of symbols. Implementations
// must return exactly one quote per unique requested symbol and must not
// fail the batch for a single symbol; only transport-level problems (network,
// timeout) are reported as an error, in which case no quotes are returned.
type Quoter interface {
	Quotes(ctx context.Context, symbols []string) ([]Quote, error)
}

package watchlist

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// jtracker is the persisted form of a Tracker, shared by the JSONL store
// format and the import/export format. Prices are plain JSON numbers,
// timestamps RFC 3339.
type jtracker struct {
	ID           string           `json:"id"`
	Symbol       string           `json:"symbol"`
	StartPrice   *decimal.Decimal `json:"startPrice"`
	TargetPrice  decimal.Decimal  `json:"targetPrice"`
	CurrentPrice *decimal.Decimal `json:"currentPrice,omitempty"`
	CompanyName  string           `json:"companyName,omitempty"`
	Currency     string           `json:"currency,omitempty"`
	LastUpdated  *time.Time       `json:"lastUpdated,omitempty"`
	SourceURL    string           `json:"sourceUrl,omitempty"`
	SourceTitle  string           `json:"sourceTitle,omitempty"`
	Err          string           `json:"errorMessage,omitempty"`
	Completed    bool             `json:"isCompleted,omitempty"`
}

func toJTracker(t *Tracker) jtracker {
	j := jtracker{
		ID:          t.ID,
		Symbol:      t.Symbol,
		StartPrice:  &t.StartPrice,
		TargetPrice: t.TargetPrice,
		CompanyName: t.CompanyName,
		Currency:    t.Currency,
		SourceURL:   t.SourceURL,
		SourceTitle: t.SourceTitle,
		Err:         t.Err,
		Completed:   t.Completed,
	}
	if t.CurrentPrice.Valid {
		p := t.CurrentPrice.Decimal
		j.CurrentPrice = &p
	}
	if !t.LastUpdated.IsZero() {
		u := t.LastUpdated
		j.LastUpdated = &u
	}
	return j
}

func (j jtracker) tracker() *Tracker {
	t := &Tracker{
		ID:          j.ID,
		Symbol:      strings.ToUpper(j.Symbol),
		TargetPrice: j.TargetPrice,
		CompanyName: j.CompanyName,
		Currency:    j.Currency,
		SourceURL:   j.SourceURL,
		SourceTitle: j.SourceTitle,
		Err:         j.Err,
		Completed:   j.Completed,
	}
	if j.StartPrice != nil {
		t.StartPrice = *j.StartPrice
	}
	if j.CurrentPrice != nil {
		t.CurrentPrice = decimal.NullDecimal{Decimal: *j.CurrentPrice, Valid: true}
	}
	if j.LastUpdated != nil {
		t.LastUpdated = *j.LastUpdated
	}
	if t.Currency == "" {
		t.Currency = DefaultCurrency
	}
	return t
}

// EncodeTrackers writes the watchlist as JSONL, one tracker per line, in
// stored order. The format is human readable and diff friendly, so a store
// directory can live in a private git repository.
func EncodeTrackers(w io.Writer, list *Watchlist) error {
	for _, t := range list.All() {
		data, err := json.Marshal(toJTracker(t))
		if err != nil {
			return fmt.Errorf("cannot marshal tracker %q: %w", t.Symbol, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write tracker %q: %w", t.Symbol, err)
		}
	}
	return nil
}

// DecodeTrackers reads a JSONL stream of trackers into a watchlist,
// preserving line order as stored order.
func DecodeTrackers(r io.Reader) (*Watchlist, error) {
	list := NewWatchlist()
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var j jtracker
		if err := json.Unmarshal(line, &j); err != nil {
			return nil, fmt.Errorf("parse error line %d: %w", n, err)
		}
		if j.ID == "" || j.Symbol == "" {
			return nil, fmt.Errorf("parse error line %d: tracker must have an id and a symbol", n)
		}
		list.trackers = append(list.trackers, j.tracker())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read trackers: %w", err)
	}
	return list, nil
}

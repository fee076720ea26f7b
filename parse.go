package watchlist

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// This file turns the raw text of a model response into quotes. The remote
// model is asked for a bare JSON object mapping symbol to {price, name}, but
// the response is untrusted: it may be fenced, wrapped in prose, oddly
// shaped or plain garbage. Parsing degrades through three tiers, and a tier
// failing for one symbol never aborts the others:
//
//  1. strict JSON decode of the cleaned text into symbol -> {price, name},
//  2. per-symbol jsonpath lookup when the text is valid JSON of another
//     shape (e.g. the mapping nested under a wrapper key),
//  3. per-symbol regexp extraction over the raw text.

// jquote is the object expected per symbol in the response payload.
type jquote struct {
	Price decimal.Decimal `json:"price"`
	Name  string          `json:"name"`
}

// parseQuotes extracts one quote per unique requested symbol from the raw
// response text. srcURL and srcTitle are the batch attribution, applied to
// every emitted quote.
func parseQuotes(raw string, symbols []string, srcURL, srcTitle string) []Quote {
	clean := stripFences(raw)

	// Tier 1: the payload has the exact requested shape.
	strict := make(map[string]jquote)
	strictOK := json.Unmarshal([]byte(clean), &strict) == nil

	// Tier 2 input: any valid JSON document, searched per symbol.
	var doc any
	docOK := json.Unmarshal([]byte(clean), &doc) == nil

	quotes := make([]Quote, 0, len(symbols))
	seen := make(map[string]bool, len(symbols))
	for _, sym := range symbols {
		if seen[sym] {
			continue
		}
		seen[sym] = true

		q := Quote{Symbol: sym, Name: sym, SourceURL: srcURL, SourceTitle: srcTitle}

		var price decimal.Decimal
		var name string
		var ok bool
		if strictOK {
			price, name, ok = lookupStrict(strict, sym)
		}
		if !ok && docOK {
			price, name, ok = lookupPath(doc, sym)
		}
		if !ok {
			price, name, ok = lookupPattern(raw, sym)
		}
		if ok {
			q.Price = decimal.NullDecimal{Decimal: price, Valid: true}
			if name != "" {
				q.Name = name
			}
		}
		quotes = append(quotes, q)
	}
	return quotes
}

// lookupStrict finds the symbol in a strictly parsed payload, matching the
// key case-insensitively since models occasionally echo lowercase symbols.
func lookupStrict(payload map[string]jquote, sym string) (decimal.Decimal, string, bool) {
	if jq, ok := payload[sym]; ok {
		return jq.Price, jq.Name, true
	}
	for key, jq := range payload {
		if strings.EqualFold(key, sym) {
			return jq.Price, jq.Name, true
		}
	}
	return decimal.Decimal{}, "", false
}

// lookupPath searches a generic JSON document for the symbol's price and
// name using recursive descent, so a mapping nested under a wrapper key
// (e.g. {"result": {"AAPL": ...}}) still resolves.
func lookupPath(doc any, sym string) (decimal.Decimal, string, bool) {
	price, ok := pathFloat(doc, fmt.Sprintf("$..[%q].price", sym))
	if !ok {
		return decimal.Decimal{}, "", false
	}
	name, _ := pathString(doc, fmt.Sprintf("$..[%q].name", sym))
	return decimal.NewFromFloat(price), name, true
}

func pathFloat(doc any, path string) (float64, bool) {
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return 0, false
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer; keep the first one if any.
	if list, ok := v.([]any); ok {
		if len(list) == 0 {
			return 0, false
		}
		v = list[0]
	}
	f, ok := v.(float64)
	return f, ok
}

func pathString(doc any, path string) (string, bool) {
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return "", false
	}
	if list, ok := v.([]any); ok {
		if len(list) == 0 {
			return "", false
		}
		v = list[0]
	}
	s, ok := v.(string)
	return s, ok
}

// lookupPattern extracts the symbol's price (and sibling name, if any) from
// the raw text. The symbol is quoted with regexp.QuoteMeta before being
// embedded in the pattern: a symbol containing characters special to regexp
// (parentheses, brackets, dots) may still fail its own extraction, but it
// cannot break the pattern and abort the batch.
func lookupPattern(raw, sym string) (decimal.Decimal, string, bool) {
	fragment := regexp.MustCompile(`(?is)"` + regexp.QuoteMeta(sym) + `"\s*:\s*\{[^{}]*\}`)
	match := fragment.FindString(raw)
	if match == "" {
		return decimal.Decimal{}, "", false
	}
	price := priceRe.FindStringSubmatch(match)
	if price == nil {
		return decimal.Decimal{}, "", false
	}
	d, err := decimal.NewFromString(price[1])
	if err != nil {
		return decimal.Decimal{}, "", false
	}
	var name string
	if m := nameRe.FindStringSubmatch(match); m != nil {
		name = m[1]
	}
	return d, name, true
}

var (
	priceRe = regexp.MustCompile(`(?i)"price"\s*:\s*(-?\d+(?:\.\d+)?(?:[eE][+-]?\d+)?)`)
	nameRe  = regexp.MustCompile(`(?i)"name"\s*:\s*"((?:[^"\\]|\\.)*)"`)
)

// stripFences removes markdown code-fence artifacts and surrounding prose,
// leaving the outermost JSON object when one is present.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		// drop the opening fence line ("```" or "```json")
		if i := strings.IndexByte(s, '\n'); i >= 0 {
			s = s[i+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}
	// cut surrounding prose down to the outermost object.
	if !strings.HasPrefix(s, "{") {
		start := strings.IndexByte(s, '{')
		end := strings.LastIndexByte(s, '}')
		if start >= 0 && end > start {
			s = s[start : end+1]
		}
	}
	return s
}

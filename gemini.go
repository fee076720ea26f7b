package watchlist

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for quote lookups unless the
// configuration overrides it.
const DefaultModel = "gemini-2.5-flash"

// fetchTimeout bounds one whole quote round trip. There is no partial
// salvage: if the call has not completed by then the batch fails.
const fetchTimeout = 20 * time.Second

// GeminiQuoter resolves quotes by asking a Gemini model grounded with Google
// Search for the current prices of a symbol batch.
type GeminiQuoter struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
}

// NewGeminiQuoter creates a quoter using the given API credential. The model
// may be empty to use DefaultModel.
func NewGeminiQuoter(ctx context.Context, apiKey, model string) (*GeminiQuoter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is not set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot initialize gemini client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &GeminiQuoter{
		client: client,
		model:  model,
		// one request every few seconds is plenty for a watch loop and
		// keeps a free-tier quota comfortable.
		limiter: rate.NewLimiter(rate.Every(5*time.Second), 1),
	}, nil
}

// Quotes asks the model for current prices of the given symbols. It returns
// one quote per unique symbol; an empty symbol set returns immediately
// without a network call. Transport errors (including the hard timeout) fail
// the whole batch.
func (g *GeminiQuoter) Quotes(ctx context.Context, symbols []string) ([]Quote, error) {
	symbols = dedupeSymbols(symbols)
	if len(symbols) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	// The limiter wait shares the timeout budget.
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("quote request rate limited: %w", err)
	}

	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(quotesPrompt(symbols)), config)
	if err != nil {
		return nil, fmt.Errorf("quote request for %d symbols failed: %w", len(symbols), err)
	}

	srcURL, srcTitle := grounding(resp)
	return parseQuotes(resp.Text(), symbols, srcURL, srcTitle), nil
}

// quotesPrompt builds the single batched instruction covering all symbols.
// The strict-JSON wording is a request, not a guarantee; parseQuotes must
// cope with violations.
func quotesPrompt(symbols []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Find the current market price for these financial instrument symbols (stocks, crypto or FX pairs): %s.\n",
		strings.Join(symbols, ", "))
	b.WriteString(`Respond with ONLY a single JSON object mapping each symbol to an object with two keys: "price" (the current price as a plain number) and "name" (the full instrument or company name as a string).`)
	b.WriteString(` Example: {"AAPL":{"price":123.45,"name":"Apple Inc."}}.`)
	b.WriteString(` Do not wrap the JSON in markdown code fences and do not add any other text.`)
	return b.String()
}

// grounding extracts one shared attribution for the batch: the first
// grounding citation that includes a web reference, if any.
func grounding(resp *genai.GenerateContentResponse) (url, title string) {
	for _, cand := range resp.Candidates {
		if cand == nil || cand.GroundingMetadata == nil {
			continue
		}
		for _, chunk := range cand.GroundingMetadata.GroundingChunks {
			if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" {
				continue
			}
			return chunk.Web.URI, chunk.Web.Title
		}
	}
	return "", ""
}

// dedupeSymbols returns the unique symbols preserving first-seen order.
func dedupeSymbols(symbols []string) []string {
	seen := make(map[string]bool, len(symbols))
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

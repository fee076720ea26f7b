package watchlist

import (
	"strings"
	"testing"

	"google.golang.org/genai"
)

func TestQuotesPrompt(t *testing.T) {
	prompt := quotesPrompt([]string{"AAPL", "BTC-USD"})

	for _, want := range []string{"AAPL", "BTC-USD", `"price"`, `"name"`, "JSON"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt does not mention %q:\n%s", want, prompt)
		}
	}
	if !strings.Contains(prompt, "fences") {
		t.Error("prompt must forbid markdown code fences")
	}
}

func TestDedupeSymbols(t *testing.T) {
	testCases := []struct {
		name string
		in   []string
		want []string
	}{
		{"empty", nil, []string{}},
		{"unique kept in order", []string{"AAPL", "MSFT"}, []string{"AAPL", "MSFT"}},
		{"duplicates collapsed", []string{"AAPL", "MSFT", "AAPL"}, []string{"AAPL", "MSFT"}},
		{"blanks dropped", []string{"", "AAPL", ""}, []string{"AAPL"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := dedupeSymbols(tc.in)
			if len(got) != len(tc.want) {
				t.Fatalf("dedupeSymbols(%v) = %v, want %v", tc.in, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("dedupeSymbols(%v)[%d] = %q, want %q", tc.in, i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestGrounding(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				GroundingMetadata: &genai.GroundingMetadata{
					GroundingChunks: []*genai.GroundingChunk{
						{}, // no web reference
						{Web: &genai.GroundingChunkWeb{URI: "https://finance.example.com", Title: "Example Finance"}},
						{Web: &genai.GroundingChunkWeb{URI: "https://other.example.com", Title: "Other"}},
					},
				},
			},
		},
	}

	url, title := grounding(resp)
	if url != "https://finance.example.com" || title != "Example Finance" {
		t.Errorf("grounding() = (%q, %q), want the first web citation", url, title)
	}

	if url, title := grounding(&genai.GenerateContentResponse{}); url != "" || title != "" {
		t.Errorf("grounding() on an ungrounded response = (%q, %q), want empty", url, title)
	}
}

func TestNewGeminiQuoterRequiresKey(t *testing.T) {
	if _, err := NewGeminiQuoter(t.Context(), "", ""); err == nil {
		t.Error("NewGeminiQuoter() accepted an empty credential")
	}
}

package discovery

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jessebruzzese-sudo/TradeHub-sub002/internal/domain"
)

var tradeTitle = cases.Title(language.English)

// NormalizeTrade canonicalizes a trade name for matching: trimmed,
// lowercased, inner whitespace collapsed. Matching is exact on the
// normalized form.
func NormalizeTrade(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// DisplayTrade renders a normalized trade name for output.
func DisplayTrade(normalized string) string {
	return tradeTitle.String(normalized)
}

// TradeList merges a candidate's primary trade with its two legacy
// comma-separated trade columns into a de-duplicated, normalized list.
// Order of first appearance is preserved.
func TradeList(c *domain.CandidateProfile) []string {
	seen := make(map[string]struct{})
	var out []string

	add := func(raw string) {
		trade := NormalizeTrade(raw)
		if trade == "" {
			return
		}
		if _, ok := seen[trade]; ok {
			return
		}
		seen[trade] = struct{}{}
		out = append(out, trade)
	}

	add(c.PrimaryTrade)
	for _, raw := range strings.Split(c.AdditionalTrades, ",") {
		add(raw)
	}
	for _, raw := range strings.Split(c.Trades, ",") {
		add(raw)
	}

	return out
}

// HasTrade reports whether the candidate's merged trade list contains the
// trade, compared on normalized forms.
func HasTrade(c *domain.CandidateProfile, trade string) bool {
	want := NormalizeTrade(trade)
	if want == "" {
		return false
	}
	for _, have := range TradeList(c) {
		if have == want {
			return true
		}
	}
	return false
}

package classifier

import "strings"

// stopWords are transaction-noise tokens dropped before embedding. Rule
// matching runs on the raw text and is not affected by this set.
var stopWords = map[string]struct{}{
	"купил":   {},
	"оплатил": {},
	"оплата":  {},
	"чек":     {},
	"покупка": {},
	"за":      {},
	"в":       {},
	"на":      {},
}

// Normalize strips informational noise from a raw expense description: it
// lower-cases the text, replaces the "|" delimiter with whitespace, drops
// stop-word tokens and rejoins the rest with single spaces.
//
// Pure function; empty input yields empty output. Idempotent.
func Normalize(raw string) string {
	lowered := strings.ReplaceAll(strings.ToLower(raw), "|", " ")

	var kept []string
	for _, word := range strings.Fields(lowered) {
		if _, noise := stopWords[word]; noise {
			continue
		}
		kept = append(kept, word)
	}
	return strings.Join(kept, " ")
}

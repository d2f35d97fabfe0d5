// FILE: pkg/mood/expand.go
// PURPOSE: Query enrichment for the embedding collaborator

package mood

import (
	"sort"
	"strings"
)

// DefaultMaxExpansionTerms bounds how many terms are appended to the
// original query. Past that point extra tokens dilute the embedding
// signal more than they help recall.
const DefaultMaxExpansionTerms = 15

// Expander builds the enriched query text sent to the embedding model.
type Expander struct {
	lexicon  *Lexicon
	maxTerms int
}

func NewExpander(lexicon *Lexicon) *Expander {
	return &Expander{lexicon: lexicon, maxTerms: DefaultMaxExpansionTerms}
}

// Expand concatenates the original query with expansion terms and
// target genre names of each detected intent, strongest intent first.
// Terms are deduplicated case-insensitively keeping first-seen order,
// and capped so the strongest intents always keep their terms.
// With no intents the query passes through unchanged.
func (e *Expander) Expand(query string, intents []DetectedIntent) string {
	if len(intents) == 0 {
		return query
	}

	seen := make(map[string]bool)
	var terms []string
	add := func(term string) {
		if len(terms) >= e.maxTerms {
			return
		}
		key := strings.ToLower(strings.TrimSpace(term))
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		terms = append(terms, term)
	}

	for _, intent := range intents {
		rule, ok := e.lexicon.Rule(intent.EmotionID)
		if !ok {
			continue
		}
		for _, term := range rule.ExpansionTerms {
			add(term)
		}
		for _, genre := range sortedGenres(rule.TargetGenres) {
			add(strings.ToLower(genre))
		}
	}

	if len(terms) == 0 {
		return query
	}
	return query + " " + strings.Join(terms, " ")
}

// sortedGenres orders a rule's target genres by boost factor descending
// so the most representative genre names survive the term cap.
func sortedGenres(genres map[string]float64) []string {
	names := make([]string, 0, len(genres))
	for g := range genres {
		names = append(names, g)
	}
	sort.Slice(names, func(i, j int) bool {
		if genres[names[i]] != genres[names[j]] {
			return genres[names[i]] > genres[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}

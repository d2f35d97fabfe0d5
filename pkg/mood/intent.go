// FILE: pkg/mood/intent.go
// PURPOSE: Tiered emotion detection over a free-text mood query

package mood

import (
	"sort"
	"strings"
)

// Detection strengths per match tier. A rule records only the highest
// tier that matched, so one rule contributes at most one intent.
const (
	strengthPhrase  = 1.0
	strengthKeyword = 0.7
	strengthBoost   = 0.4
)

// Detector scans queries against a lexicon.
type Detector struct {
	lexicon *Lexicon
}

func NewDetector(lexicon *Lexicon) *Detector {
	return &Detector{lexicon: lexicon}
}

// Detect returns every rule that fired for the query, strongest first.
// Ordering is deterministic: strength descending, then rule id.
func (d *Detector) Detect(query string) []DetectedIntent {
	queryLower := strings.ToLower(query)

	var intents []DetectedIntent
	for _, rule := range d.lexicon.Rules() {
		strength := matchRule(rule, queryLower)
		if strength > 0 {
			intents = append(intents, DetectedIntent{
				EmotionID: rule.ID,
				Strength:  strength,
			})
		}
	}

	sort.SliceStable(intents, func(i, j int) bool {
		if intents[i].Strength != intents[j].Strength {
			return intents[i].Strength > intents[j].Strength
		}
		return intents[i].EmotionID < intents[j].EmotionID
	})
	return intents
}

// matchRule evaluates tiers strongest-first and stops at the first hit,
// so overlapping patterns never double-activate the same rule.
func matchRule(rule Rule, queryLower string) float64 {
	for _, phrase := range rule.Phrases {
		if strings.Contains(queryLower, strings.ToLower(phrase)) {
			return strengthPhrase
		}
	}
	for _, kw := range rule.Keywords {
		if strings.Contains(queryLower, strings.ToLower(kw)) {
			return strengthKeyword
		}
	}
	for _, kw := range rule.BoostKeywords {
		if strings.Contains(queryLower, strings.ToLower(kw)) {
			return strengthBoost
		}
	}
	return 0
}

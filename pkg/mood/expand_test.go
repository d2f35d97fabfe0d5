package mood

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandNoIntents(t *testing.T) {
	expander := NewExpander(DefaultLexicon())
	query := "les oiseaux migrateurs"
	assert.Equal(t, query, expander.Expand(query, nil))
}

func TestExpandAppendsTermsAndGenres(t *testing.T) {
	expander := NewExpander(DefaultLexicon())

	out := expander.Expand("j'ai envie de rire", []DetectedIntent{
		{EmotionID: "rire", Strength: 1.0},
	})

	assert.True(t, strings.HasPrefix(out, "j'ai envie de rire "), "original query must lead")
	assert.Contains(t, out, "comedy")
	assert.Contains(t, out, "funny")
}

func TestExpandCapsTermCount(t *testing.T) {
	expander := NewExpander(DefaultLexicon())

	out := expander.Expand("film", []DetectedIntent{
		{EmotionID: "action", Strength: 1.0},
		{EmotionID: "mystere", Strength: 0.7},
		{EmotionID: "peur", Strength: 0.4},
	})

	added := strings.Fields(strings.TrimPrefix(out, "film "))
	// Multi-word terms count once each, so field count can exceed the
	// term cap slightly, but it must stay in the same order of
	// magnitude and the strongest intent's terms must be present.
	assert.LessOrEqual(t, len(added), DefaultMaxExpansionTerms+5)
	assert.Contains(t, out, "action")
	assert.Contains(t, out, "thrilling")
}

func TestExpandDeduplicatesCaseInsensitive(t *testing.T) {
	lex := MustNewLexicon([]Rule{
		{
			ID:             "a",
			Keywords:       []string{"aaa"},
			TargetGenres:   map[string]float64{"Drama": 2.0},
			ExpansionTerms: []string{"Emotional", "deep"},
		},
		{
			ID:             "b",
			Keywords:       []string{"bbb"},
			TargetGenres:   map[string]float64{"Drama": 1.5},
			ExpansionTerms: []string{"emotional", "moving"},
		},
	})
	expander := NewExpander(lex)

	out := expander.Expand("q", []DetectedIntent{
		{EmotionID: "a", Strength: 1.0},
		{EmotionID: "b", Strength: 0.7},
	})

	assert.Equal(t, 1, strings.Count(strings.ToLower(out), "emotional"),
		"duplicate terms must be kept once, first-seen casing")
	assert.Equal(t, 1, strings.Count(out, "drama"))
}

func TestExpandStrongestIntentTermsSurviveCap(t *testing.T) {
	// Build rules with enough terms to overflow the cap; the first
	// (strongest) intent's terms must all survive.
	many := func(prefix string) []string {
		terms := make([]string, 10)
		for i := range terms {
			terms[i] = prefix + string(rune('a'+i))
		}
		return terms
	}
	lex := MustNewLexicon([]Rule{
		{ID: "x", Keywords: []string{"x"}, TargetGenres: map[string]float64{"Action": 2}, ExpansionTerms: many("x")},
		{ID: "y", Keywords: []string{"y"}, TargetGenres: map[string]float64{"Drama": 2}, ExpansionTerms: many("y")},
	})
	expander := NewExpander(lex)

	out := expander.Expand("q", []DetectedIntent{
		{EmotionID: "x", Strength: 1.0},
		{EmotionID: "y", Strength: 0.4},
	})

	for _, term := range many("x") {
		assert.Contains(t, out, term)
	}
	assert.NotContains(t, out, "yj", "weakest intent terms beyond the cap are dropped")
}

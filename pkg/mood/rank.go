// FILE: pkg/mood/rank.go
// PURPOSE: Composite scoring of vector-search candidates against intents

package mood

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// RankerConfig holds the tunable scoring parameters outside the
// lexicon: anti-genre suppression and the intent-independent recency
// and quality adjustments. Secondary boosts stay modest (<= 1.4) so
// they reorder near-ties without overriding intent matches.
type RankerConfig struct {
	// AntiGenrePenalty multiplies the score of candidates whose genres
	// hit a detected intent's anti-genres. Compounds per intent.
	AntiGenrePenalty float64

	RecentYear  int     // release_year >= RecentYear gets RecentBoost
	ModernYear  int     // release_year >= ModernYear gets ModernBoost
	RecentBoost float64
	ModernBoost float64

	HighRating  float64 // vote_average >= HighRating gets HighBoost
	GoodRating  float64 // vote_average >= GoodRating gets GoodBoost
	HighBoost   float64
	GoodBoost   float64
}

// DefaultRankerConfig returns the tuned production values.
func DefaultRankerConfig() RankerConfig {
	return RankerConfig{
		AntiGenrePenalty: 0.6,
		RecentYear:       2020,
		ModernYear:       2010,
		RecentBoost:      1.15,
		ModernBoost:      1.05,
		HighRating:       7.5,
		GoodRating:       7.0,
		HighBoost:        1.10,
		GoodBoost:        1.05,
	}
}

const maxSecondaryBoost = 1.4

// Validate rejects configurations that would invert the meaning of a
// penalty or let a secondary boost dominate intent matching.
func (c RankerConfig) Validate() error {
	if c.AntiGenrePenalty <= 0 || c.AntiGenrePenalty >= 1 {
		return fmt.Errorf("anti-genre penalty must be in (0,1), got %f", c.AntiGenrePenalty)
	}
	for name, b := range map[string]float64{
		"recent boost": c.RecentBoost,
		"modern boost": c.ModernBoost,
		"high boost":   c.HighBoost,
		"good boost":   c.GoodBoost,
	} {
		if b < 1.0 || b > maxSecondaryBoost {
			return fmt.Errorf("%s must be in [1.0, %.1f], got %f", name, maxSecondaryBoost, b)
		}
	}
	return nil
}

// Ranker computes composite scores. It is stateless apart from its
// read-only lexicon and config, safe for concurrent use.
type Ranker struct {
	lexicon *Lexicon
	cfg     RankerConfig
}

func NewRanker(lexicon *Lexicon, cfg RankerConfig) (*Ranker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("ranker config: %w", err)
	}
	return &Ranker{lexicon: lexicon, cfg: cfg}, nil
}

// Rank attaches a composite score to every candidate and returns them
// ordered by that score. The score is a pure function of the candidate
// attributes and the detected intents; boosts multiply so the outcome
// does not depend on application order. Additive visibility floors are
// applied last, after penalties, because they exist precisely to
// guarantee a minimum score for strongly-matched content.
func (r *Ranker) Rank(candidates []Candidate, intents []DetectedIntent) []Candidate {
	ranked := make([]Candidate, len(candidates))
	copy(ranked, candidates)

	for i := range ranked {
		ranked[i].CompositeScore = r.score(&ranked[i], intents)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].CompositeScore != ranked[j].CompositeScore {
			return ranked[i].CompositeScore > ranked[j].CompositeScore
		}
		if ranked[i].BaseSimilarity != ranked[j].BaseSimilarity {
			return ranked[i].BaseSimilarity > ranked[j].BaseSimilarity
		}
		return ranked[i].MovieID < ranked[j].MovieID
	})
	return ranked
}

func (r *Ranker) score(c *Candidate, intents []DetectedIntent) float64 {
	score := c.BaseSimilarity
	genres := lowerSet(c.Genres)

	// Intent boosts: one multiplicative boost per matching intent,
	// scaled by detection strength. Strength 1.0 applies the full
	// factor, weaker detections interpolate toward neutral.
	for _, intent := range intents {
		rule, ok := r.lexicon.Rule(intent.EmotionID)
		if !ok {
			continue
		}
		if factor := bestGenreFactor(rule.TargetGenres, genres); factor > 0 {
			score *= 1 + intent.Strength*(factor-1)
		}
	}

	// Secondary boosts, independent of intents.
	switch {
	case c.ReleaseYear >= r.cfg.RecentYear:
		score *= r.cfg.RecentBoost
	case c.ReleaseYear >= r.cfg.ModernYear:
		score *= r.cfg.ModernBoost
	}
	switch {
	case c.VoteAverage >= r.cfg.HighRating:
		score *= r.cfg.HighBoost
	case c.VoteAverage >= r.cfg.GoodRating:
		score *= r.cfg.GoodBoost
	}

	// Anti-genre penalties compound per conflicting intent. They apply
	// even when the query also matched the anti-genre's own positive
	// rule: both signals are real, so both effects multiply.
	for _, intent := range intents {
		rule, ok := r.lexicon.Rule(intent.EmotionID)
		if !ok {
			continue
		}
		if intersects(rule.AntiGenres, genres) {
			score *= r.cfg.AntiGenrePenalty
		}
	}

	// Visibility floors: lift matching candidates additively, capped at
	// 1.0, never lowering a score already above the cap.
	for _, intent := range intents {
		rule, ok := r.lexicon.Rule(intent.EmotionID)
		if !ok || rule.FloorDelta == 0 {
			continue
		}
		if bestGenreFactor(rule.TargetGenres, genres) > 0 {
			lifted := math.Min(1.0, score+rule.FloorDelta*intent.Strength)
			score = math.Max(score, lifted)
		}
	}

	return score
}

// bestGenreFactor returns the highest boost factor among the target
// genres present on the candidate, or 0 when none overlap. A candidate
// matching several target genres of one rule is boosted once, by the
// strongest factor — never once per genre.
func bestGenreFactor(targets map[string]float64, candidateGenres map[string]bool) float64 {
	best := 0.0
	for genre, factor := range targets {
		if candidateGenres[strings.ToLower(genre)] && factor > best {
			best = factor
		}
	}
	return best
}

func intersects(genres []string, candidateGenres map[string]bool) bool {
	for _, g := range genres {
		if candidateGenres[strings.ToLower(g)] {
			return true
		}
	}
	return false
}

func lowerSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = true
	}
	return set
}

// FILE: pkg/mood/normalize.go
// PURPOSE: Map composite scores into a bounded user-facing range

package mood

import (
	"fmt"
	"math"
)

// NormalizerConfig fixes the display-score transform. The bounds keep
// the top result short of certainty and the bottom of a page from
// looking implausibly weak — a UX smoothing, not a probability.
type NormalizerConfig struct {
	Scale      float64
	Offset     float64
	LowerBound float64
	UpperBound float64

	// IntentBonus is added once when at least one intent was detected,
	// MultiIntentBonus on top when two or more fired. Uniform across
	// the result set, so rank order is never altered.
	IntentBonus      float64
	MultiIntentBonus float64
}

func DefaultNormalizerConfig() NormalizerConfig {
	return NormalizerConfig{
		Scale:            0.65,
		Offset:           0.3,
		LowerBound:       0.3,
		UpperBound:       0.98,
		IntentBonus:      0.1,
		MultiIntentBonus: 0.05,
	}
}

func (c NormalizerConfig) Validate() error {
	if c.LowerBound < 0 || c.UpperBound > 1 || c.LowerBound >= c.UpperBound {
		return fmt.Errorf("display bounds [%f, %f] invalid", c.LowerBound, c.UpperBound)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %f", c.Scale)
	}
	if c.IntentBonus < 0 || c.MultiIntentBonus < 0 {
		return fmt.Errorf("intent bonuses must be non-negative")
	}
	return nil
}

// Normalizer converts ranked candidates into RankedResults.
type Normalizer struct {
	cfg NormalizerConfig
}

func NewNormalizer(cfg NormalizerConfig) (*Normalizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("normalizer config: %w", err)
	}
	return &Normalizer{cfg: cfg}, nil
}

// Normalize divides every composite score by the set maximum (1.0 for
// an empty set), applies the affine transform plus the uniform
// confidence bonus, and clamps into the configured bounds. Because the
// transform is monotonic and the bonus uniform, display ordering always
// matches composite ordering.
func (n *Normalizer) Normalize(candidates []Candidate, intentCount int) []RankedResult {
	maxScore := 1.0
	if len(candidates) > 0 {
		maxScore = candidates[0].CompositeScore
		for _, c := range candidates {
			if c.CompositeScore > maxScore {
				maxScore = c.CompositeScore
			}
		}
		if maxScore <= 0 {
			maxScore = 1.0
		}
	}

	bonus := 0.0
	if intentCount >= 1 {
		bonus += n.cfg.IntentBonus
	}
	if intentCount >= 2 {
		bonus += n.cfg.MultiIntentBonus
	}

	results := make([]RankedResult, len(candidates))
	for i, c := range candidates {
		normalized := c.CompositeScore / maxScore
		display := normalized*n.cfg.Scale + n.cfg.Offset + bonus
		display = math.Max(n.cfg.LowerBound, math.Min(n.cfg.UpperBound, display))

		results[i] = RankedResult{
			Candidate:    c,
			DisplayScore: display,
			Availability: c.Availability,
		}
	}
	return results
}

// FILE: pkg/mood/pipeline.go
// PURPOSE: Glue for the pure ranking stages; collaborator I/O stays out

package mood

import (
	"fmt"
	"strings"
)

// Query limit bounds accepted from callers.
const (
	MinLimit = 1
	MaxLimit = 50
)

// ValidateQuery rejects requests before any collaborator call.
func ValidateQuery(text string, limit int) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: empty query text", ErrInvalidQuery)
	}
	if limit < MinLimit || limit > MaxLimit {
		return fmt.Errorf("%w: limit %d outside [%d, %d]", ErrInvalidQuery, limit, MinLimit, MaxLimit)
	}
	return nil
}

// Params scopes one Process call.
type Params struct {
	Limit     int
	Platforms []string
}

// Pipeline is the full mood-to-ranking computation. Every stage is
// pure; embedding and vector search happen between ExpandQuery and
// Process, owned by the caller. The pipeline holds only read-only
// state and serves concurrent requests without locking.
type Pipeline struct {
	lexicon     *Lexicon
	detector    *Detector
	expander    *Expander
	ranker      *Ranker
	platform    *PlatformFilter
	diversifier *Diversifier
	normalizer  *Normalizer
}

func NewPipeline(lexicon *Lexicon, rankerCfg RankerConfig, normalizerCfg NormalizerConfig) (*Pipeline, error) {
	ranker, err := NewRanker(lexicon, rankerCfg)
	if err != nil {
		return nil, err
	}
	normalizer, err := NewNormalizer(normalizerCfg)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		lexicon:     lexicon,
		detector:    NewDetector(lexicon),
		expander:    NewExpander(lexicon),
		ranker:      ranker,
		platform:    NewPlatformFilter(),
		diversifier: NewDiversifier(),
		normalizer:  normalizer,
	}, nil
}

// DefaultPipeline builds the production pipeline over the built-in
// lexicon. Panics only on a programming error in the defaults.
func DefaultPipeline() *Pipeline {
	p, err := NewPipeline(DefaultLexicon(), DefaultRankerConfig(), DefaultNormalizerConfig())
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Pipeline) Lexicon() *Lexicon { return p.lexicon }

// Detect runs intent detection on the raw query text.
func (p *Pipeline) Detect(query string) []DetectedIntent {
	return p.detector.Detect(query)
}

// ExpandQuery builds the enriched text for the embedding collaborator.
func (p *Pipeline) ExpandQuery(query string, intents []DetectedIntent) string {
	return p.expander.Expand(query, intents)
}

// Process ranks, platform-partitions, diversifies and normalizes the
// candidate set. Empty input yields an empty (non-nil) result.
func (p *Pipeline) Process(candidates []Candidate, intents []DetectedIntent, params Params) []RankedResult {
	if len(candidates) == 0 {
		return []RankedResult{}
	}

	ranked := p.ranker.Rank(candidates, intents)

	matched, other := p.platform.Partition(ranked, params.Platforms)

	// The diversifier drops duplicates and over-represented genres, so
	// keep headroom beyond the requested page before it runs.
	working := p.platform.Apply(matched, other, params.Limit*3)

	diversified := p.diversifier.Diversify(working, params.Limit)

	return p.normalizer.Normalize(diversified, len(intents))
}

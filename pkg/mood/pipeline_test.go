package mood

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateQuery(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		limit   int
		wantErr bool
	}{
		{"valid", "j'ai envie de rire", 10, false},
		{"empty text", "", 10, true},
		{"whitespace text", "   \t ", 10, true},
		{"limit zero", "ok", 0, true},
		{"limit too high", "ok", 51, true},
		{"limit at min", "ok", 1, false},
		{"limit at max", "ok", 50, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateQuery(tc.text, tc.limit)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidQuery)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPipelineComedyScenario(t *testing.T) {
	p := DefaultPipeline()

	query := "j'ai envie de rire"
	intents := p.Detect(query)
	require.NotEmpty(t, intents)
	assert.Equal(t, "rire", intents[0].EmotionID)
	assert.InDelta(t, 1.0, intents[0].Strength, 1e-9)

	expanded := p.ExpandQuery(query, intents)
	assert.Contains(t, expanded, query)
	assert.Contains(t, expanded, "comedy")

	candidates := []Candidate{
		{MovieID: 1, Title: "Le Dîner de Cons", Genres: []string{"Comedy"}, BaseSimilarity: 0.5},
		{MovieID: 2, Title: "Manchester by the Sea", Genres: []string{"Drama"}, BaseSimilarity: 0.6},
	}

	results := p.Process(candidates, intents, Params{Limit: 10})

	require.Len(t, results, 2)
	assert.Equal(t, int64(1), results[0].MovieID, "boosted comedy outranks the higher-similarity drama")
	assert.Greater(t, results[0].DisplayScore, results[1].DisplayScore)
}

func TestPipelineEmptyCandidates(t *testing.T) {
	p := DefaultPipeline()

	results := p.Process(nil, p.Detect("j'ai envie de rire"), Params{Limit: 10})

	require.NotNil(t, results, "empty candidate set yields an empty result, not nil")
	assert.Empty(t, results)
}

func TestPipelineDeterminism(t *testing.T) {
	p := DefaultPipeline()
	intents := p.Detect("un film qui fait peur et rire")
	candidates := []Candidate{
		{MovieID: 4, Title: "A", Genres: []string{"Horror"}, BaseSimilarity: 0.52, Platforms: []string{"Netflix"}},
		{MovieID: 2, Title: "B", Genres: []string{"Comedy"}, BaseSimilarity: 0.52, Platforms: []string{"Canal+"}},
		{MovieID: 9, Title: "C", Genres: []string{"Drama"}, BaseSimilarity: 0.7},
		{MovieID: 1, Title: "D", Genres: []string{"Horror", "Comedy"}, BaseSimilarity: 0.4},
	}
	params := Params{Limit: 4, Platforms: []string{"Netflix"}}

	first := p.Process(candidates, intents, params)
	for i := 0; i < 20; i++ {
		again := p.Process(candidates, intents, params)
		require.Equal(t, len(first), len(again))
		for j := range first {
			assert.Equal(t, first[j].MovieID, again[j].MovieID)
			assert.InDelta(t, first[j].DisplayScore, again[j].DisplayScore, 1e-12)
		}
	}
}

func TestPipelinePlatformAvailability(t *testing.T) {
	p := DefaultPipeline()
	candidates := []Candidate{
		{MovieID: 1, Title: "A", Genres: []string{"Comedy"}, BaseSimilarity: 0.9, Platforms: []string{"Netflix"}},
		{MovieID: 2, Title: "B", Genres: []string{"Drama"}, BaseSimilarity: 0.8, Platforms: []string{"Canal+"}},
	}

	results := p.Process(candidates, nil, Params{Limit: 5, Platforms: []string{"netflix"}})

	require.Len(t, results, 2, "sparse platform coverage backfills the page")
	assert.Equal(t, AvailabilityPreferred, results[0].Availability)
	assert.Equal(t, AvailabilityOther, results[1].Availability)
}

func TestPipelineRespectsLimit(t *testing.T) {
	p := DefaultPipeline()
	var candidates []Candidate
	genres := []string{"Comedy", "Drama", "Action", "Horror", "Romance", "Thriller", "Animation", "Family"}
	for i := 0; i < 40; i++ {
		candidates = append(candidates, Candidate{
			MovieID:        int64(i + 1),
			Title:          "Movie " + string(rune('A'+i%26)) + string(rune('a'+i/26)),
			Genres:         []string{genres[i%len(genres)]},
			BaseSimilarity: 0.9 - float64(i)*0.01,
		})
	}

	results := p.Process(candidates, nil, Params{Limit: 5})

	assert.LessOrEqual(t, len(results), 5)
	assert.NotEmpty(t, results)
}

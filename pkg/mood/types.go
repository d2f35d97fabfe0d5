// FILE: pkg/mood/types.go
// PURPOSE: Core types flowing through the mood-to-ranking pipeline

package mood

// DetectedIntent is one emotion rule that fired for a query.
type DetectedIntent struct {
	EmotionID string `json:"emotion_id"`
	// Strength reflects detection confidence: 1.0 exact phrase,
	// 0.7 keyword, 0.4 loose boost-vocabulary match.
	Strength float64 `json:"strength"`
}

// Candidate is one movie returned by the vector-search collaborator,
// carrying its base similarity and the metadata the ranker needs.
// Candidates live for a single search request only.
type Candidate struct {
	MovieID     int64    `json:"movie_id"`
	Title       string   `json:"title"`
	Overview    string   `json:"overview"`
	Genres      []string `json:"genres"`
	ReleaseYear int      `json:"release_year"`
	VoteAverage float64  `json:"vote_average"`
	PosterPath  string   `json:"poster_path"`
	Platforms   []string `json:"platforms"`

	// BaseSimilarity is the raw cosine similarity from the vector store.
	BaseSimilarity float64 `json:"base_similarity"`
	// CompositeScore is BaseSimilarity after all boosts and penalties.
	// Populated by the ranker, zero before Rank runs.
	CompositeScore float64 `json:"composite_score"`
	// Availability is set by the platform filter and copied onto the
	// final RankedResult.
	Availability AvailabilityStatus `json:"-"`
}

// PrimaryGenre returns the first genre, used by the diversifier's
// per-genre caps. Movies without genres share a single bucket.
func (c *Candidate) PrimaryGenre() string {
	if len(c.Genres) == 0 {
		return "unknown"
	}
	return c.Genres[0]
}

// AvailabilityStatus flags whether a result matched the caller's
// platform preference or was backfilled from the rest of the catalog.
type AvailabilityStatus string

const (
	AvailabilityPreferred AvailabilityStatus = "preferred"
	AvailabilityOther     AvailabilityStatus = "other"
)

// RankedResult is a Candidate with its final user-facing score.
type RankedResult struct {
	Candidate
	// DisplayScore is the bounded confidence shown to users. It is a
	// UX smoothing of the composite score, not a probability.
	DisplayScore float64            `json:"display_score"`
	Availability AvailabilityStatus `json:"availability_status"`
}

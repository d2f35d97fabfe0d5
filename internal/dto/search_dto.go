package dto

type SearchRequest struct {
	Query     string   `json:"query" validate:"required"`
	Limit     int      `json:"limit" validate:"omitempty,min=1,max=50"`
	Platforms []string `json:"platforms"`
	// Genres restricts the vector search itself, before ranking.
	Genres []string `json:"genres"`
	// Threshold overrides the configured similarity cutoff when set.
	Threshold *float64 `json:"threshold" validate:"omitempty,gte=0,lte=1"`
}

type DetectedEmotion struct {
	Emotion  string  `json:"emotion"`
	Strength float64 `json:"strength"`
}

type MovieResult struct {
	Id           int64    `json:"id"`
	Title        string   `json:"title"`
	Overview     string   `json:"overview"`
	Genres       []string `json:"genres"`
	ReleaseYear  int      `json:"release_year,omitempty"`
	VoteAverage  float64  `json:"vote_average,omitempty"`
	PosterPath   string   `json:"poster_path,omitempty"`
	Platforms    []string `json:"platforms,omitempty"`
	Confidence   float64  `json:"confidence"`
	Availability string   `json:"availability,omitempty"` // "preferred" | "other"
}

type SearchResponse struct {
	Query            string            `json:"query"`
	ExpandedQuery    string            `json:"expanded_query,omitempty"`
	DetectedEmotions []DetectedEmotion `json:"detected_emotions"`
	Results          []MovieResult     `json:"results"`
	Total            int               `json:"total"`
}

type MoodSuggestion struct {
	Emotion  string   `json:"emotion"`
	Examples []string `json:"examples"`
	Genres   []string `json:"genres"`
}

type SuggestionsResponse struct {
	Suggestions []MoodSuggestion `json:"suggestions"`
}

type PlatformsResponse struct {
	Platforms []string `json:"platforms"`
}

package dto

type MoodQueryCount struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}

type StatsResponse struct {
	TotalMovies     int64            `json:"total_movies"`
	TotalEmbeddings int64            `json:"total_embeddings"`
	MoviesByGenre   map[string]int64 `json:"movies_by_genre"`
	TopMoodQueries  []MoodQueryCount `json:"top_mood_queries"`
}

type HealthResponse struct {
	Status            string `json:"status"`
	Database          string `json:"database"`
	EmbeddingProvider string `json:"embedding_provider"`
}

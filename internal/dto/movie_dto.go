package dto

import "time"

type CreateMovieRequest struct {
	Id             int64    `json:"id" validate:"required"`
	Title          string   `json:"title" validate:"required"`
	Overview       string   `json:"overview"`
	Genres         []string `json:"genres" validate:"required,min=1"`
	ReleaseYear    int      `json:"release_year"`
	VoteAverage    float64  `json:"vote_average" validate:"omitempty,min=0,max=10"`
	Popularity     float64  `json:"popularity"`
	Runtime        int      `json:"runtime"`
	PosterPath     string   `json:"poster_path"`
	WatchProviders []string `json:"watch_providers"`
}

type CreateMovieResponse struct {
	Id int64 `json:"id"`
}

type ShowMovieResponse struct {
	Id             int64      `json:"id"`
	Title          string     `json:"title"`
	Overview       string     `json:"overview"`
	Genres         []string   `json:"genres"`
	ReleaseYear    int        `json:"release_year"`
	VoteAverage    float64    `json:"vote_average"`
	Popularity     float64    `json:"popularity"`
	Runtime        int        `json:"runtime"`
	PosterPath     string     `json:"poster_path"`
	WatchProviders []string   `json:"watch_providers"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}

// PublishEmbedMovieMessage is the payload queued for the async embedding
// worker whenever catalog content changes.
type PublishEmbedMovieMessage struct {
	MovieId int64 `json:"movie_id"`
}

package entity

import (
	"time"
)

type Movie struct {
	Id             int64 // TMDB id, provided by the catalog source
	Title          string
	Overview       string
	Genres         []string
	ReleaseYear    int
	VoteAverage    float64
	Popularity     float64
	Runtime        int
	PosterPath     string
	WatchProviders []string
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}

package specification

import (
	"gorm.io/gorm"
)

// TitleLike matches movie titles case-insensitively.
type TitleLike struct {
	Title string
}

func (s TitleLike) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("title ILIKE ?", "%"+s.Title+"%")
}

// HasGenre filters movies whose jsonb genres array contains the genre.
type HasGenre struct {
	Genre string
}

func (s HasGenre) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("genres @> ?", `["`+s.Genre+`"]`)
}

// HasPlatform filters movies available on a streaming platform.
type HasPlatform struct {
	Platform string
}

func (s HasPlatform) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("watch_providers @> ?", `["`+s.Platform+`"]`)
}

// ReleasedSince filters movies released in or after a given year.
type ReleasedSince struct {
	Year int
}

func (s ReleasedSince) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("release_year >= ?", s.Year)
}

package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Movie struct {
	Id             int64          `gorm:"primaryKey"` // TMDB id, not generated
	Title          string         `gorm:"type:varchar(255);not null;index"`
	Overview       string         `gorm:"type:text"`
	Genres         datatypes.JSON `gorm:"type:jsonb"` // ["Comedy","Drama"]
	ReleaseYear    int            `gorm:"index"`
	VoteAverage    float64        `gorm:"default:0"`
	Popularity     float64        `gorm:"default:0"`
	Runtime        int            `gorm:"default:0"`
	PosterPath     string         `gorm:"type:varchar(255)"`
	WatchProviders datatypes.JSON `gorm:"type:jsonb"` // ["Netflix","Canal+"]
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (Movie) TableName() string {
	return "movies"
}

package mapper

import (
	"encoding/json"
	"time"

	"github.com/Salaem66/pickme2/internal/entity"
	"github.com/Salaem66/pickme2/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MovieMapper struct{}

func NewMovieMapper() *MovieMapper {
	return &MovieMapper{}
}

func (m *MovieMapper) ToEntity(e *model.Movie) *entity.Movie {
	if e == nil {
		return nil
	}

	var deletedAt *time.Time
	if e.DeletedAt.Valid {
		t := e.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	return &entity.Movie{
		Id:             e.Id,
		Title:          e.Title,
		Overview:       e.Overview,
		Genres:         decodeStringList(e.Genres),
		ReleaseYear:    e.ReleaseYear,
		VoteAverage:    e.VoteAverage,
		Popularity:     e.Popularity,
		Runtime:        e.Runtime,
		PosterPath:     e.PosterPath,
		WatchProviders: decodeStringList(e.WatchProviders),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
		IsDeleted:      e.DeletedAt.Valid,
	}
}

func (m *MovieMapper) ToModel(e *entity.Movie) *model.Movie {
	if e == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if e.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *e.DeletedAt, Valid: true}
	} else if e.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.Movie{
		Id:             e.Id,
		Title:          e.Title,
		Overview:       e.Overview,
		Genres:         encodeStringList(e.Genres),
		ReleaseYear:    e.ReleaseYear,
		VoteAverage:    e.VoteAverage,
		Popularity:     e.Popularity,
		Runtime:        e.Runtime,
		PosterPath:     e.PosterPath,
		WatchProviders: encodeStringList(e.WatchProviders),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
	}
}

func (m *MovieMapper) ToEntities(movies []*model.Movie) []*entity.Movie {
	entities := make([]*entity.Movie, len(movies))
	for i, e := range movies {
		entities[i] = m.ToEntity(e)
	}
	return entities
}

func encodeStringList(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(b)
}

func decodeStringList(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil
	}
	return values
}

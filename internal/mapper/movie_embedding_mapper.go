package mapper

import (
	"time"

	"github.com/Salaem66/pickme2/internal/entity"
	"github.com/Salaem66/pickme2/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type MovieEmbeddingMapper struct{}

func NewMovieEmbeddingMapper() *MovieEmbeddingMapper {
	return &MovieEmbeddingMapper{}
}

func (m *MovieEmbeddingMapper) ToEntity(e *model.MovieEmbedding) *entity.MovieEmbedding {
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

	return &entity.MovieEmbedding{
		Id:             e.Id,
		Document:       e.Document,
		EmbeddingValue: e.EmbeddingValue.Slice(),
		MovieId:        e.MovieId,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
		IsDeleted:      e.DeletedAt.Valid,
	}
}

func (m *MovieEmbeddingMapper) ToModel(e *entity.MovieEmbedding) *model.MovieEmbedding {
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

	return &model.MovieEmbedding{
		Id:             e.Id,
		Document:       e.Document,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		MovieId:        e.MovieId,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
	}
}

func (m *MovieEmbeddingMapper) ToEntities(embeddings []*model.MovieEmbedding) []*entity.MovieEmbedding {
	entities := make([]*entity.MovieEmbedding, len(embeddings))
	for i, e := range embeddings {
		entities[i] = m.ToEntity(e)
	}
	return entities
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

type MovieEmbedding struct {
	Id             uuid.UUID
	Document       string
	EmbeddingValue []float32
	MovieId        int64
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}

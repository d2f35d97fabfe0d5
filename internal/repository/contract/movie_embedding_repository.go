package contract

import (
	"context"

	"github.com/Salaem66/pickme2/internal/entity"
	"github.com/Salaem66/pickme2/internal/repository/specification"

	"github.com/google/uuid"
)

// ScoredMovieEmbedding wraps MovieEmbedding with its similarity score
type ScoredMovieEmbedding struct {
	Embedding  *entity.MovieEmbedding
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type MovieEmbeddingRepository interface {
	Create(ctx context.Context, embedding *entity.MovieEmbedding) error
	CreateBulk(ctx context.Context, embeddings []*entity.MovieEmbedding) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByMovieId(ctx context.Context, movieId int64) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MovieEmbedding, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MovieEmbedding, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SearchSimilarWithScore returns embeddings with their similarity scores,
	// filtered by threshold and, when genres is non-empty, by catalog genre.
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64, genres []string) ([]*ScoredMovieEmbedding, error)
}

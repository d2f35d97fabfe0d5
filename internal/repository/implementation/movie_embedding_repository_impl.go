package implementation

import (
	"context"
	"errors"

	"github.com/Salaem66/pickme2/internal/entity"
	"github.com/Salaem66/pickme2/internal/mapper"
	"github.com/Salaem66/pickme2/internal/model"
	"github.com/Salaem66/pickme2/internal/repository/contract"
	"github.com/Salaem66/pickme2/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type MovieEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MovieEmbeddingMapper
}

func NewMovieEmbeddingRepository(db *gorm.DB) contract.MovieEmbeddingRepository {
	return &MovieEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewMovieEmbeddingMapper(),
	}
}

func (r *MovieEmbeddingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MovieEmbeddingRepositoryImpl) Create(ctx context.Context, embedding *entity.MovieEmbedding) error {
	m := r.mapper.ToModel(embedding)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*embedding = *r.mapper.ToEntity(m)
	return nil
}

func (r *MovieEmbeddingRepositoryImpl) CreateBulk(ctx context.Context, embeddings []*entity.MovieEmbedding) error {
	models := make([]*model.MovieEmbedding, len(embeddings))
	for i, e := range embeddings {
		models[i] = r.mapper.ToModel(e)
	}

	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}

	for i, m := range models {
		*embeddings[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *MovieEmbeddingRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.MovieEmbedding{}, id).Error
}

func (r *MovieEmbeddingRepositoryImpl) DeleteByMovieId(ctx context.Context, movieId int64) error {
	return r.db.WithContext(ctx).Where("movie_id = ?", movieId).Delete(&model.MovieEmbedding{}).Error
}

func (r *MovieEmbeddingRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MovieEmbedding, error) {
	var m model.MovieEmbedding
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MovieEmbeddingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MovieEmbedding, error) {
	var models []*model.MovieEmbedding
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *MovieEmbeddingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.MovieEmbedding{}).Count(&count).Error
	return count, err
}

// SearchSimilarWithScore returns embeddings with similarity scores,
// filtered by threshold and optionally restricted to movies carrying one
// of the given genres.
func (r *MovieEmbeddingRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64, genres []string) ([]*contract.ScoredMovieEmbedding, error) {
	if limit <= 0 {
		limit = 5
	}

	// Cosine distance in pgvector is: 1 - cosine_similarity
	// So we compute: 1 - (embedding_value <=> query_vector) = cosine_similarity
	type result struct {
		model.MovieEmbedding
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	query := r.db.WithContext(ctx).
		Table("movie_embeddings").
		Select("movie_embeddings.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Joins("JOIN movies ON movies.id = movie_embeddings.movie_id").
		Where("movie_embeddings.deleted_at IS NULL").
		Where("movies.deleted_at IS NULL").
		Where("1 - (embedding_value <=> ?) >= ?", queryVector, threshold)

	if len(genres) > 0 {
		// Any-overlap on the jsonb genres array. jsonb_exists_any is the
		// function form of ?| which would clash with the bind placeholder.
		query = query.Where("jsonb_exists_any(movies.genres, ?::text[])", pgTextArray(genres))
	}

	err := query.
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	scoredEmbeddings := make([]*contract.ScoredMovieEmbedding, len(results))
	for i, res := range results {
		scoredEmbeddings[i] = &contract.ScoredMovieEmbedding{
			Embedding:  r.mapper.ToEntity(&res.MovieEmbedding),
			Similarity: res.Similarity,
		}
	}
	return scoredEmbeddings, nil
}

// pgTextArray renders a Postgres text[] literal, e.g. {"Comedy","Drama"}.
func pgTextArray(values []string) string {
	out := "{"
	for i, v := range values {
		if i > 0 {
			out += ","
		}
		out += `"` + v + `"`
	}
	return out + "}"
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Salaem66/pickme2/internal/dto"
	"github.com/Salaem66/pickme2/internal/entity"
	"github.com/Salaem66/pickme2/internal/repository/contract"
	"github.com/Salaem66/pickme2/internal/repository/memory"
	"github.com/Salaem66/pickme2/internal/repository/specification"
	"github.com/Salaem66/pickme2/internal/repository/unitofwork"
	"github.com/Salaem66/pickme2/pkg/embedding"
	"github.com/Salaem66/pickme2/pkg/mood"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fakes ---

type fakeEmbeddingProvider struct {
	vector []float32
	err    error
	calls  int
}

func (f *fakeEmbeddingProvider) Generate(ctx context.Context, text string, taskType string) (*embedding.EmbeddingResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: f.vector},
	}, nil
}

func (f *fakeEmbeddingProvider) Name() string { return "fake" }

type fakeMovieRepo struct {
	contract.MovieRepository
	movies     []*entity.Movie
	platforms  []string
	count      int64
	byGenre    map[string]int64
	err        error
	deletedIds []int64
}

func (f *fakeMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	return f.err
}

func (f *fakeMovieRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Movie, error) {
	return f.movies, f.err
}

func (f *fakeMovieRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Movie, error) {
	if f.err != nil || len(f.movies) == 0 {
		return nil, f.err
	}
	return f.movies[0], nil
}

func (f *fakeMovieRepo) Delete(ctx context.Context, id int64) error {
	f.deletedIds = append(f.deletedIds, id)
	return f.err
}

func (f *fakeMovieRepo) DistinctPlatforms(ctx context.Context) ([]string, error) {
	return f.platforms, f.err
}

func (f *fakeMovieRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return f.count, f.err
}

func (f *fakeMovieRepo) CountByGenre(ctx context.Context) (map[string]int64, error) {
	return f.byGenre, f.err
}

type fakeEmbeddingRepo struct {
	contract.MovieEmbeddingRepository
	scored          []*contract.ScoredMovieEmbedding
	count           int64
	err             error
	gotGenres       []string
	gotThreshold    float64
	deletedMovieIds []int64
}

func (f *fakeEmbeddingRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return f.count, f.err
}

func (f *fakeEmbeddingRepo) DeleteByMovieId(ctx context.Context, movieId int64) error {
	f.deletedMovieIds = append(f.deletedMovieIds, movieId)
	return f.err
}

func (f *fakeEmbeddingRepo) SearchSimilarWithScore(ctx context.Context, vec []float32, limit int, threshold float64, genres []string) ([]*contract.ScoredMovieEmbedding, error) {
	f.gotGenres = genres
	f.gotThreshold = threshold
	return f.scored, f.err
}

type fakeUow struct {
	movieRepo     contract.MovieRepository
	embeddingRepo contract.MovieEmbeddingRepository
}

func (f *fakeUow) Begin(ctx context.Context) error { return nil }
func (f *fakeUow) Commit() error                   { return nil }
func (f *fakeUow) Rollback() error                 { return nil }

func (f *fakeUow) MovieRepository() contract.MovieRepository { return f.movieRepo }
func (f *fakeUow) MovieEmbeddingRepository() contract.MovieEmbeddingRepository {
	return f.embeddingRepo
}

type fakeFactory struct {
	uow unitofwork.UnitOfWork
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

// --- helpers ---

func scoredRow(movieId int64, similarity float64) *contract.ScoredMovieEmbedding {
	return &contract.ScoredMovieEmbedding{
		Embedding: &entity.MovieEmbedding{
			Id:      uuid.New(),
			MovieId: movieId,
		},
		Similarity: similarity,
	}
}

func newTestSearchService(movieRepo *fakeMovieRepo, embeddingRepo *fakeEmbeddingRepo, provider *fakeEmbeddingProvider) ISearchService {
	return NewSearchService(
		&fakeFactory{uow: &fakeUow{movieRepo: movieRepo, embeddingRepo: embeddingRepo}},
		provider,
		memory.NewEmbeddingCache(time.Minute),
		mood.DefaultPipeline(),
		nil,
		nil,
		0.3,
		noopLogger{},
	)
}

// --- tests ---

func TestSearchComedyQuery(t *testing.T) {
	movieRepo := &fakeMovieRepo{
		movies: []*entity.Movie{
			{Id: 1, Title: "Le Dîner de Cons", Genres: []string{"Comedy"}, ReleaseYear: 1998, VoteAverage: 7.6},
			{Id: 2, Title: "Manchester by the Sea", Genres: []string{"Drama"}, ReleaseYear: 2016, VoteAverage: 7.8},
		},
	}
	embeddingRepo := &fakeEmbeddingRepo{
		scored: []*contract.ScoredMovieEmbedding{
			scoredRow(2, 0.6),
			scoredRow(1, 0.5),
		},
	}
	svc := newTestSearchService(movieRepo, embeddingRepo, &fakeEmbeddingProvider{vector: []float32{0.1, 0.2}})

	res, err := svc.Search(context.Background(), &dto.SearchRequest{Query: "j'ai envie de rire"})

	require.NoError(t, err)
	require.Len(t, res.Results, 2)
	assert.Equal(t, int64(1), res.Results[0].Id, "mood boost outranks raw similarity")
	require.NotEmpty(t, res.DetectedEmotions)
	assert.Equal(t, "rire", res.DetectedEmotions[0].Emotion)
	assert.Contains(t, res.ExpandedQuery, "comedy")
	assert.Equal(t, 2, res.Total)
	for _, r := range res.Results {
		assert.GreaterOrEqual(t, r.Confidence, 0.3)
		assert.LessOrEqual(t, r.Confidence, 0.98)
	}
}

func TestSearchRejectsInvalidQuery(t *testing.T) {
	provider := &fakeEmbeddingProvider{vector: []float32{0.1}}
	svc := newTestSearchService(&fakeMovieRepo{}, &fakeEmbeddingRepo{}, provider)

	_, err := svc.Search(context.Background(), &dto.SearchRequest{Query: "   "})

	require.Error(t, err)
	assert.ErrorIs(t, err, mood.ErrInvalidQuery)
	assert.Zero(t, provider.calls, "validation failures never reach the embedding provider")
}

func TestSearchEmbeddingFailure(t *testing.T) {
	provider := &fakeEmbeddingProvider{err: errors.New("gemini: 503")}
	svc := newTestSearchService(&fakeMovieRepo{}, &fakeEmbeddingRepo{}, provider)

	_, err := svc.Search(context.Background(), &dto.SearchRequest{Query: "quelque chose de fort"})

	require.Error(t, err)
	assert.True(t, mood.IsCollaboratorError(err))
}

func TestSearchVectorSearchFailure(t *testing.T) {
	embeddingRepo := &fakeEmbeddingRepo{err: errors.New("pq: connection refused")}
	svc := newTestSearchService(&fakeMovieRepo{}, embeddingRepo, &fakeEmbeddingProvider{vector: []float32{0.1}})

	_, err := svc.Search(context.Background(), &dto.SearchRequest{Query: "un film triste"})

	require.Error(t, err)
	assert.True(t, mood.IsCollaboratorError(err))
}

func TestSearchEmptyVectorResults(t *testing.T) {
	svc := newTestSearchService(&fakeMovieRepo{}, &fakeEmbeddingRepo{}, &fakeEmbeddingProvider{vector: []float32{0.1}})

	res, err := svc.Search(context.Background(), &dto.SearchRequest{Query: "quelque chose d'introuvable"})

	require.NoError(t, err)
	assert.NotNil(t, res.Results)
	assert.Empty(t, res.Results)
	assert.Zero(t, res.Total)
}

func TestSearchCachesExpandedQuery(t *testing.T) {
	provider := &fakeEmbeddingProvider{vector: []float32{0.1, 0.2}}
	svc := newTestSearchService(&fakeMovieRepo{}, &fakeEmbeddingRepo{}, provider)

	for i := 0; i < 3; i++ {
		_, err := svc.Search(context.Background(), &dto.SearchRequest{Query: "j'ai envie de rire"})
		require.NoError(t, err)
	}

	assert.Equal(t, 1, provider.calls, "identical expanded queries hit the embedding cache")
}

func TestSearchDedupesEmbeddingsPerMovie(t *testing.T) {
	movieRepo := &fakeMovieRepo{
		movies: []*entity.Movie{
			{Id: 7, Title: "Amélie", Genres: []string{"Comedy", "Romance"}},
		},
	}
	embeddingRepo := &fakeEmbeddingRepo{
		scored: []*contract.ScoredMovieEmbedding{
			scoredRow(7, 0.4),
			scoredRow(7, 0.8),
			scoredRow(9, 0.9), // no catalog row, dropped during hydration
		},
	}
	svc := newTestSearchService(movieRepo, embeddingRepo, &fakeEmbeddingProvider{vector: []float32{0.1}})

	res, err := svc.Search(context.Background(), &dto.SearchRequest{Query: "un film léger"})

	require.NoError(t, err)
	require.Len(t, res.Results, 1)
	assert.Equal(t, int64(7), res.Results[0].Id)
}

func TestSearchPlatformFilter(t *testing.T) {
	movieRepo := &fakeMovieRepo{
		movies: []*entity.Movie{
			{Id: 1, Title: "A", Genres: []string{"Comedy"}, WatchProviders: []string{"Netflix"}},
			{Id: 2, Title: "B", Genres: []string{"Comedy"}, WatchProviders: []string{"Canal+"}},
		},
	}
	embeddingRepo := &fakeEmbeddingRepo{
		scored: []*contract.ScoredMovieEmbedding{
			scoredRow(1, 0.6),
			scoredRow(2, 0.7),
		},
	}
	svc := newTestSearchService(movieRepo, embeddingRepo, &fakeEmbeddingProvider{vector: []float32{0.1}})

	res, err := svc.Search(context.Background(), &dto.SearchRequest{
		Query:     "envie de rire",
		Platforms: []string{"netflix"},
	})

	require.NoError(t, err)
	require.Len(t, res.Results, 2, "sparse coverage backfills with off-platform titles")
	assert.Equal(t, int64(1), res.Results[0].Id)
	assert.Equal(t, string(mood.AvailabilityPreferred), res.Results[0].Availability)
	assert.Equal(t, string(mood.AvailabilityOther), res.Results[1].Availability)
}

func TestSearchGenreFilterReachesVectorQuery(t *testing.T) {
	embeddingRepo := &fakeEmbeddingRepo{}
	svc := newTestSearchService(&fakeMovieRepo{}, embeddingRepo, &fakeEmbeddingProvider{vector: []float32{0.1}})

	_, err := svc.Search(context.Background(), &dto.SearchRequest{
		Query:  "envie de rire",
		Genres: []string{"Comedy", "Animation"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Comedy", "Animation"}, embeddingRepo.gotGenres,
		"requested genres restrict the vector search itself")
}

func TestSearchThresholdOverride(t *testing.T) {
	embeddingRepo := &fakeEmbeddingRepo{}
	svc := newTestSearchService(&fakeMovieRepo{}, embeddingRepo, &fakeEmbeddingProvider{vector: []float32{0.1}})

	_, err := svc.Search(context.Background(), &dto.SearchRequest{Query: "envie de rire"})
	require.NoError(t, err)
	assert.InDelta(t, 0.3, embeddingRepo.gotThreshold, 1e-9, "configured threshold applies by default")

	override := 0.55
	_, err = svc.Search(context.Background(), &dto.SearchRequest{
		Query:     "envie de rire",
		Threshold: &override,
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.55, embeddingRepo.gotThreshold, 1e-9, "per-request threshold overrides the configured one")
}

func TestSearchRejectsInvalidThreshold(t *testing.T) {
	provider := &fakeEmbeddingProvider{vector: []float32{0.1}}
	svc := newTestSearchService(&fakeMovieRepo{}, &fakeEmbeddingRepo{}, provider)

	for _, bad := range []float64{-0.1, 1.1} {
		threshold := bad
		_, err := svc.Search(context.Background(), &dto.SearchRequest{
			Query:     "envie de rire",
			Threshold: &threshold,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, mood.ErrInvalidQuery)
	}
	assert.Zero(t, provider.calls, "threshold validation happens before the embedding call")
}

func TestSuggestionsCoverLexicon(t *testing.T) {
	svc := newTestSearchService(&fakeMovieRepo{}, &fakeEmbeddingRepo{}, &fakeEmbeddingProvider{})

	res, err := svc.Suggestions(context.Background())

	require.NoError(t, err)
	require.NotEmpty(t, res.Suggestions)
	for _, s := range res.Suggestions {
		assert.NotEmpty(t, s.Emotion)
		assert.NotEmpty(t, s.Examples)
		assert.LessOrEqual(t, len(s.Examples), 3)
	}
}

func TestPlatformsEndpoint(t *testing.T) {
	movieRepo := &fakeMovieRepo{platforms: []string{"Canal+", "Netflix", "Prime Video"}}
	svc := newTestSearchService(movieRepo, &fakeEmbeddingRepo{}, &fakeEmbeddingProvider{})

	res, err := svc.Platforms(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Canal+", "Netflix", "Prime Video"}, res.Platforms)
}

// FILE: internal/service/search_service.go
package service

import (
	"context"
	"fmt"

	"github.com/Salaem66/pickme2/internal/dto"
	"github.com/Salaem66/pickme2/internal/pkg/logger"
	"github.com/Salaem66/pickme2/internal/repository/contract"
	"github.com/Salaem66/pickme2/internal/repository/memory"
	"github.com/Salaem66/pickme2/internal/repository/specification"
	"github.com/Salaem66/pickme2/internal/repository/unitofwork"
	"github.com/Salaem66/pickme2/pkg/embedding"
	"github.com/Salaem66/pickme2/pkg/events"
	"github.com/Salaem66/pickme2/pkg/mood"
	pktNats "github.com/Salaem66/pickme2/pkg/nats"
)

const (
	// DefaultSearchLimit applies when the caller does not pick a page size.
	DefaultSearchLimit = 10

	// Candidates fetched ahead of ranking: diversification and platform
	// filtering both drop entries, so the vector search over-fetches.
	fetchMultiplier = 5
	maxFetchLimit   = 200
)

type ISearchService interface {
	Search(ctx context.Context, req *dto.SearchRequest) (*dto.SearchResponse, error)
	Suggestions(ctx context.Context) (*dto.SuggestionsResponse, error)
	Platforms(ctx context.Context) (*dto.PlatformsResponse, error)
}

type searchService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	embeddingCache    *memory.EmbeddingCache
	pipeline          *mood.Pipeline
	statsService      IStatsService
	eventPublisher    *pktNats.Publisher
	threshold         float64
	log               logger.ILogger
}

func NewSearchService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	embeddingCache *memory.EmbeddingCache,
	pipeline *mood.Pipeline,
	statsService IStatsService,
	eventPublisher *pktNats.Publisher,
	threshold float64,
	log logger.ILogger,
) ISearchService {
	return &searchService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		embeddingCache:    embeddingCache,
		pipeline:          pipeline,
		statsService:      statsService,
		eventPublisher:    eventPublisher,
		threshold:         threshold,
		log:               log,
	}
}

func (s *searchService) Search(ctx context.Context, req *dto.SearchRequest) (*dto.SearchResponse, error) {
	limit := req.Limit
	if limit == 0 {
		limit = DefaultSearchLimit
	}

	// Reject before touching any collaborator.
	if err := mood.ValidateQuery(req.Query, limit); err != nil {
		return nil, err
	}

	threshold := s.threshold
	if req.Threshold != nil {
		if *req.Threshold < 0 || *req.Threshold > 1 {
			return nil, fmt.Errorf("%w: similarity threshold must be in [0,1]", mood.ErrInvalidQuery)
		}
		threshold = *req.Threshold
	}

	intents := s.pipeline.Detect(req.Query)
	expanded := s.pipeline.ExpandQuery(req.Query, intents)

	vector, err := s.embedQuery(ctx, expanded)
	if err != nil {
		return nil, err
	}

	fetchLimit := limit * fetchMultiplier
	if fetchLimit > maxFetchLimit {
		fetchLimit = maxFetchLimit
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	scored, err := uow.MovieEmbeddingRepository().SearchSimilarWithScore(ctx, vector, fetchLimit, threshold, req.Genres)
	if err != nil {
		return nil, &mood.CollaboratorError{Op: "vector search", Err: err}
	}

	candidates, err := s.hydrateCandidates(ctx, uow, scored)
	if err != nil {
		return nil, err
	}

	results := s.pipeline.Process(candidates, intents, mood.Params{
		Limit:     limit,
		Platforms: req.Platforms,
	})

	s.recordSearch(req.Query, intents, len(results))

	return buildSearchResponse(req.Query, expanded, intents, results), nil
}

func (s *searchService) embedQuery(ctx context.Context, expanded string) ([]float32, error) {
	if vector, ok := s.embeddingCache.Get(expanded); ok {
		return vector, nil
	}

	res, err := s.embeddingProvider.Generate(ctx, expanded, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, &mood.CollaboratorError{Op: "embed query", Err: err}
	}

	s.embeddingCache.Set(expanded, res.Embedding.Values)
	return res.Embedding.Values, nil
}

// hydrateCandidates joins the scored embeddings with their catalog rows.
// Multiple embeddings of one movie collapse to the best similarity.
func (s *searchService) hydrateCandidates(ctx context.Context, uow unitofwork.UnitOfWork, scored []*contract.ScoredMovieEmbedding) ([]mood.Candidate, error) {
	if len(scored) == 0 {
		return nil, nil
	}

	bestSimilarity := make(map[int64]float64)
	order := make([]int64, 0, len(scored))
	for _, sr := range scored {
		id := sr.Embedding.MovieId
		if prev, seen := bestSimilarity[id]; !seen {
			bestSimilarity[id] = sr.Similarity
			order = append(order, id)
		} else if sr.Similarity > prev {
			bestSimilarity[id] = sr.Similarity
		}
	}

	movies, err := uow.MovieRepository().FindAll(ctx, specification.ByIDs{IDs: order})
	if err != nil {
		return nil, &mood.CollaboratorError{Op: "load movies", Err: err}
	}

	byID := make(map[int64]int, len(movies))
	for i, m := range movies {
		byID[m.Id] = i
	}

	candidates := make([]mood.Candidate, 0, len(order))
	for _, id := range order {
		i, ok := byID[id]
		if !ok {
			continue // embedding row without a live catalog entry
		}
		m := movies[i]
		candidates = append(candidates, mood.Candidate{
			MovieID:        m.Id,
			Title:          m.Title,
			Overview:       m.Overview,
			Genres:         m.Genres,
			ReleaseYear:    m.ReleaseYear,
			VoteAverage:    m.VoteAverage,
			PosterPath:     m.PosterPath,
			Platforms:      m.WatchProviders,
			BaseSimilarity: bestSimilarity[id],
		})
	}
	return candidates, nil
}

// recordSearch publishes the query to the stats counters and the event
// bus. Both are auxiliary and never fail the request.
func (s *searchService) recordSearch(query string, intents []mood.DetectedIntent, resultCount int) {
	emotions := make([]string, len(intents))
	for i, intent := range intents {
		emotions[i] = intent.EmotionID
	}

	go func() {
		ctx := context.Background()
		if s.statsService != nil {
			if err := s.statsService.RecordMoodQuery(ctx, query); err != nil {
				s.log.Warn("search", "Failed to record mood query", map[string]interface{}{"error": err.Error()})
			}
		}
		if s.eventPublisher != nil {
			evt := events.NewMoodSearched(query, emotions, resultCount)
			if err := s.eventPublisher.Publish(ctx, evt); err != nil {
				s.log.Warn("search", "Failed to publish MOOD_SEARCHED event", map[string]interface{}{"error": err.Error()})
			}
		}
	}()
}

func (s *searchService) Suggestions(ctx context.Context) (*dto.SuggestionsResponse, error) {
	rules := s.pipeline.Lexicon().Rules()

	suggestions := make([]dto.MoodSuggestion, 0, len(rules))
	for _, rule := range rules {
		examples := rule.Phrases
		if len(examples) > 3 {
			examples = examples[:3]
		}
		genres := make([]string, 0, len(rule.TargetGenres))
		for g := range rule.TargetGenres {
			genres = append(genres, g)
		}
		suggestions = append(suggestions, dto.MoodSuggestion{
			Emotion:  rule.ID,
			Examples: examples,
			Genres:   genres,
		})
	}

	return &dto.SuggestionsResponse{Suggestions: suggestions}, nil
}

func (s *searchService) Platforms(ctx context.Context) (*dto.PlatformsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	platforms, err := uow.MovieRepository().DistinctPlatforms(ctx)
	if err != nil {
		return nil, &mood.CollaboratorError{Op: "list platforms", Err: err}
	}
	return &dto.PlatformsResponse{Platforms: platforms}, nil
}

func buildSearchResponse(query, expanded string, intents []mood.DetectedIntent, results []mood.RankedResult) *dto.SearchResponse {
	emotions := make([]dto.DetectedEmotion, len(intents))
	for i, intent := range intents {
		emotions[i] = dto.DetectedEmotion{
			Emotion:  intent.EmotionID,
			Strength: intent.Strength,
		}
	}

	movieResults := make([]dto.MovieResult, len(results))
	for i, r := range results {
		movieResults[i] = dto.MovieResult{
			Id:           r.MovieID,
			Title:        r.Title,
			Overview:     r.Overview,
			Genres:       r.Genres,
			ReleaseYear:  r.ReleaseYear,
			VoteAverage:  r.VoteAverage,
			PosterPath:   r.PosterPath,
			Platforms:    r.Platforms,
			Confidence:   r.DisplayScore,
			Availability: string(r.Availability),
		}
	}

	return &dto.SearchResponse{
		Query:            query,
		ExpandedQuery:    expanded,
		DetectedEmotions: emotions,
		Results:          movieResults,
		Total:            len(movieResults),
	}
}

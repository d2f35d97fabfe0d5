// FILE: internal/service/stats_service.go
package service

import (
	"context"
	"strings"

	"github.com/Salaem66/pickme2/internal/dto"
	"github.com/Salaem66/pickme2/internal/repository/unitofwork"
	"github.com/Salaem66/pickme2/pkg/embedding"

	"github.com/redis/go-redis/v9"
)

// moodQueryKey is the Redis sorted set holding per-query hit counters.
const moodQueryKey = "vibefilms:mood_queries"

const topQueryCount = 10

type IStatsService interface {
	RecordMoodQuery(ctx context.Context, query string) error
	GetStats(ctx context.Context) (*dto.StatsResponse, error)
	Health(ctx context.Context) *dto.HealthResponse
}

type statsService struct {
	uowFactory        unitofwork.RepositoryFactory
	rdb               *redis.Client
	embeddingProvider embedding.EmbeddingProvider
}

func NewStatsService(
	uowFactory unitofwork.RepositoryFactory,
	rdb *redis.Client,
	embeddingProvider embedding.EmbeddingProvider,
) IStatsService {
	return &statsService{
		uowFactory:        uowFactory,
		rdb:               rdb,
		embeddingProvider: embeddingProvider,
	}
}

func (s *statsService) RecordMoodQuery(ctx context.Context, query string) error {
	if s.rdb == nil {
		return nil
	}
	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return nil
	}
	return s.rdb.ZIncrBy(ctx, moodQueryKey, 1, normalized).Err()
}

func (s *statsService) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	totalMovies, err := uow.MovieRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	totalEmbeddings, err := uow.MovieEmbeddingRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	byGenre, err := uow.MovieRepository().CountByGenre(ctx)
	if err != nil {
		return nil, err
	}

	topQueries, err := s.topMoodQueries(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.StatsResponse{
		TotalMovies:     totalMovies,
		TotalEmbeddings: totalEmbeddings,
		MoviesByGenre:   byGenre,
		TopMoodQueries:  topQueries,
	}, nil
}

func (s *statsService) topMoodQueries(ctx context.Context) ([]dto.MoodQueryCount, error) {
	if s.rdb == nil {
		return []dto.MoodQueryCount{}, nil
	}

	entries, err := s.rdb.ZRevRangeWithScores(ctx, moodQueryKey, 0, topQueryCount-1).Result()
	if err != nil {
		// Stats stay useful without Redis; degrade to an empty list.
		return []dto.MoodQueryCount{}, nil
	}

	counts := make([]dto.MoodQueryCount, 0, len(entries))
	for _, e := range entries {
		query, ok := e.Member.(string)
		if !ok {
			continue
		}
		counts = append(counts, dto.MoodQueryCount{
			Query: query,
			Count: int64(e.Score),
		})
	}
	return counts, nil
}

func (s *statsService) Health(ctx context.Context) *dto.HealthResponse {
	dbStatus := "ok"
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := uow.MovieRepository().Count(ctx); err != nil {
		dbStatus = "unreachable"
	}

	status := "ok"
	if dbStatus != "ok" {
		status = "degraded"
	}

	return &dto.HealthResponse{
		Status:            status,
		Database:          dbStatus,
		EmbeddingProvider: s.embeddingProvider.Name(),
	}
}

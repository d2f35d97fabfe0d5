// FILE: internal/service/movie_service.go
package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Salaem66/pickme2/internal/dto"
	"github.com/Salaem66/pickme2/internal/entity"
	"github.com/Salaem66/pickme2/internal/pkg/logger"
	"github.com/Salaem66/pickme2/internal/repository/specification"
	"github.com/Salaem66/pickme2/internal/repository/unitofwork"
	"github.com/Salaem66/pickme2/pkg/events"
	pktNats "github.com/Salaem66/pickme2/pkg/nats"
)

type IMovieService interface {
	Create(ctx context.Context, req *dto.CreateMovieRequest) (*dto.CreateMovieResponse, error)
	Show(ctx context.Context, id int64) (*dto.ShowMovieResponse, error)
	Delete(ctx context.Context, id int64) error
}

type movieService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	log              logger.ILogger
}

func NewMovieService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IMovieService {
	return &movieService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		log:              log,
	}
}

func (s *movieService) Create(ctx context.Context, req *dto.CreateMovieRequest) (*dto.CreateMovieResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	movie := entity.Movie{
		Id:             req.Id,
		Title:          req.Title,
		Overview:       req.Overview,
		Genres:         req.Genres,
		ReleaseYear:    req.ReleaseYear,
		VoteAverage:    req.VoteAverage,
		Popularity:     req.Popularity,
		Runtime:        req.Runtime,
		PosterPath:     req.PosterPath,
		WatchProviders: req.WatchProviders,
		CreatedAt:      time.Now(),
	}

	err := uow.MovieRepository().Create(ctx, &movie)
	if err != nil {
		return nil, err
	}

	// Queue the embedding job for the async worker.
	msgPayload := dto.PublishEmbedMovieMessage{
		MovieId: movie.Id,
	}
	msgJson, err := json.Marshal(msgPayload)
	if err != nil {
		return nil, err
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		return nil, err
	}

	// Cross-service event is auxiliary, log and continue on failure.
	if s.eventPublisher != nil {
		evt := events.NewMovieCreated(movie.Id, movie.Title)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("movie", "Failed to publish MOVIE_CREATED event", map[string]interface{}{"error": err.Error()})
		}
	}

	return &dto.CreateMovieResponse{
		Id: movie.Id,
	}, nil
}

func (s *movieService) Show(ctx context.Context, id int64) (*dto.ShowMovieResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	movie, err := uow.MovieRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, nil // Not found
	}

	return &dto.ShowMovieResponse{
		Id:             movie.Id,
		Title:          movie.Title,
		Overview:       movie.Overview,
		Genres:         movie.Genres,
		ReleaseYear:    movie.ReleaseYear,
		VoteAverage:    movie.VoteAverage,
		Popularity:     movie.Popularity,
		Runtime:        movie.Runtime,
		PosterPath:     movie.PosterPath,
		WatchProviders: movie.WatchProviders,
		CreatedAt:      movie.CreatedAt,
		UpdatedAt:      movie.UpdatedAt,
	}, nil
}

func (s *movieService) Delete(ctx context.Context, id int64) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	movie, err := uow.MovieRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if movie == nil {
		return nil
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.MovieRepository().Delete(ctx, id); err != nil {
		return err
	}

	if err := uow.MovieEmbeddingRepository().DeleteByMovieId(ctx, id); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	// Cross-service event is auxiliary, log and continue on failure.
	if s.eventPublisher != nil {
		evt := events.NewMovieDeleted(id)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("movie", "Failed to publish MOVIE_DELETED event", map[string]interface{}{"error": err.Error()})
		}
	}

	return nil
}

// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Salaem66/pickme2/internal/dto"
	"github.com/Salaem66/pickme2/internal/entity"
	"github.com/Salaem66/pickme2/internal/pkg/logger"
	"github.com/Salaem66/pickme2/internal/repository/specification"
	"github.com/Salaem66/pickme2/internal/repository/unitofwork"
	"github.com/Salaem66/pickme2/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	log               logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		log:               log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedMovieMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		cs.log.Error("consumer", "Failed to unmarshal embed message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	movie, err := uow.MovieRepository().FindOne(ctx, specification.ByID{ID: payload.MovieId})
	if err != nil {
		cs.log.Error("consumer", "Failed to get movie", map[string]interface{}{"movie_id": payload.MovieId, "error": err.Error()})
		msg.Nack() // Nack for retriable errors
		return
	}
	if movie == nil {
		// Movie deleted between publish and consume. Ack.
		cs.log.Warn("consumer", "Movie not found, skipping", map[string]interface{}{"movie_id": payload.MovieId})
		msg.Ack()
		return
	}

	document := BuildMovieDocument(movie)

	res, err := cs.embeddingProvider.Generate(ctx, document, embedding.TaskRetrievalDocument)
	if err != nil {
		cs.log.Error("consumer", "Failed to generate embedding", map[string]interface{}{"movie_id": payload.MovieId, "error": err.Error()})
		msg.Nack()
		return
	}

	newEmbedding := &entity.MovieEmbedding{
		Id:             uuid.New(),
		Document:       document,
		EmbeddingValue: res.Embedding.Values,
		MovieId:        movie.Id,
		CreatedAt:      time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		cs.log.Error("consumer", "Failed to begin transaction", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}
	defer uow.Rollback()

	if err := uow.MovieEmbeddingRepository().DeleteByMovieId(ctx, movie.Id); err != nil {
		cs.log.Error("consumer", "Failed to delete old embedding", map[string]interface{}{"movie_id": movie.Id, "error": err.Error()})
		msg.Nack()
		return
	}

	if err := uow.MovieEmbeddingRepository().Create(ctx, newEmbedding); err != nil {
		cs.log.Error("consumer", "Failed to store embedding", map[string]interface{}{"movie_id": movie.Id, "error": err.Error()})
		msg.Nack()
		return
	}

	if err := uow.Commit(); err != nil {
		cs.log.Error("consumer", "Failed to commit transaction", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}

	cs.log.Info("consumer", "Movie embedded", map[string]interface{}{"movie_id": movie.Id, "title": movie.Title})
	msg.Ack()
}

// BuildMovieDocument renders the text that gets embedded for a movie.
// Field labels are French to match the query language of the users.
func BuildMovieDocument(movie *entity.Movie) string {
	return fmt.Sprintf("Titre: %s | Synopsis: %s | Genres: %s",
		movie.Title,
		movie.Overview,
		strings.Join(movie.Genres, ", "),
	)
}

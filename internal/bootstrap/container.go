package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/Salaem66/pickme2/internal/config"
	"github.com/Salaem66/pickme2/internal/controller"
	"github.com/Salaem66/pickme2/internal/pkg/logger"
	"github.com/Salaem66/pickme2/internal/repository/memory"
	"github.com/Salaem66/pickme2/internal/repository/unitofwork"
	"github.com/Salaem66/pickme2/internal/service"
	"github.com/Salaem66/pickme2/pkg/embedding"
	"github.com/Salaem66/pickme2/pkg/mood"

	pktNats "github.com/Salaem66/pickme2/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SearchController controller.ISearchController
	MovieController  controller.IMovieController
	StatsController  controller.IStatsController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Embedding Provider
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	embeddingCache := memory.NewEmbeddingCache(time.Duration(cfg.Search.EmbedCacheTTLMin) * time.Minute)

	// 4. Infrastructure
	// NATS (optional, fire-and-forget events)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis (mood-query counters)
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// 5. Services
	publisherService := service.NewPublisherService(cfg.Keys.EmbedMovieTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.EmbedMovieTopic,
		uowFactory,
		embeddingProvider,
		sysLogger,
	)

	statsService := service.NewStatsService(uowFactory, rdb, embeddingProvider)

	searchService := service.NewSearchService(
		uowFactory,
		embeddingProvider,
		embeddingCache,
		mood.DefaultPipeline(),
		statsService,
		natsPub,
		cfg.Search.SimilarityThreshold,
		sysLogger,
	)

	movieService := service.NewMovieService(uowFactory, publisherService, natsPub, sysLogger)

	// 6. Controllers
	return &Container{
		SearchController: controller.NewSearchController(searchService),
		MovieController:  controller.NewMovieController(movieService),
		StatsController:  controller.NewStatsController(statsService),

		ConsumerService: consumerService,
	}
}

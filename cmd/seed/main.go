package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/Salaem66/pickme2/internal/config"
	"github.com/Salaem66/pickme2/internal/entity"
	"github.com/Salaem66/pickme2/internal/repository/unitofwork"
	"github.com/Salaem66/pickme2/internal/service"
	"github.com/Salaem66/pickme2/pkg/database"
	"github.com/Salaem66/pickme2/pkg/embedding"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// catalogMovie mirrors a TMDB-style JSON export entry.
type catalogMovie struct {
	Id             int64    `json:"id"`
	Title          string   `json:"title"`
	Overview       string   `json:"overview"`
	Genres         []string `json:"genres"`
	ReleaseDate    string   `json:"release_date"`
	VoteAverage    float64  `json:"vote_average"`
	Popularity     float64  `json:"popularity"`
	Runtime        int      `json:"runtime"`
	PosterPath     string   `json:"poster_path"`
	WatchProviders []string `json:"watch_providers"`
}

func (c catalogMovie) releaseYear() int {
	if len(c.ReleaseDate) < 4 {
		return 0
	}
	t, err := time.Parse("2006-01-02", c.ReleaseDate)
	if err != nil {
		return 0
	}
	return t.Year()
}

const insertBatchSize = 100

func main() {
	catalogPath := flag.String("catalog", "data/movies.json", "path to the TMDB-shaped movie catalog JSON")
	withEmbeddings := flag.Bool("embed", true, "generate embeddings while seeding")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	cfg := config.Load()

	db, err := database.NewGormDB(cfg.Database.Connection)
	if err != nil {
		color.Red("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	raw, err := os.ReadFile(*catalogPath)
	if err != nil {
		color.Red("Failed to read catalog %s: %v", *catalogPath, err)
		os.Exit(1)
	}

	var catalog []catalogMovie
	if err := json.Unmarshal(raw, &catalog); err != nil {
		color.Red("Failed to parse catalog: %v", err)
		os.Exit(1)
	}

	color.Cyan("Seeding %d movies from %s", len(catalog), *catalogPath)

	var provider embedding.EmbeddingProvider
	if *withEmbeddings {
		switch cfg.Ai.EmbeddingProvider {
		case "ollama":
			provider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
		default:
			provider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		}
		color.Cyan("Embedding provider: %s", provider.Name())
	}

	ctx := context.Background()
	uow := unitofwork.NewUnitOfWork(db)

	inserted := 0
	embedded := 0
	skipped := 0

	for start := 0; start < len(catalog); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(catalog) {
			end = len(catalog)
		}
		batch := catalog[start:end]

		movies := make([]*entity.Movie, 0, len(batch))
		for _, c := range batch {
			if c.Id == 0 || c.Title == "" {
				skipped++
				continue
			}
			movies = append(movies, &entity.Movie{
				Id:             c.Id,
				Title:          c.Title,
				Overview:       c.Overview,
				Genres:         c.Genres,
				ReleaseYear:    c.releaseYear(),
				VoteAverage:    c.VoteAverage,
				Popularity:     c.Popularity,
				Runtime:        c.Runtime,
				PosterPath:     c.PosterPath,
				WatchProviders: c.WatchProviders,
			})
		}
		if len(movies) == 0 {
			continue
		}

		if err := uow.Begin(ctx); err != nil {
			color.Red("Failed to begin transaction: %v", err)
			os.Exit(1)
		}

		if err := uow.MovieRepository().CreateBulk(ctx, movies); err != nil {
			_ = uow.Rollback()
			color.Red("Failed to insert batch %d-%d: %v", start, end, err)
			os.Exit(1)
		}

		if provider != nil {
			embeddings := make([]*entity.MovieEmbedding, 0, len(movies))
			for _, m := range movies {
				doc := service.BuildMovieDocument(m)
				resp, err := provider.Generate(ctx, doc, embedding.TaskRetrievalDocument)
				if err != nil {
					color.Yellow("Skipping embedding for %q (%d): %v", m.Title, m.Id, err)
					continue
				}
				embeddings = append(embeddings, &entity.MovieEmbedding{
					Document:       doc,
					EmbeddingValue: resp.Embedding.Values,
					MovieId:        m.Id,
				})
			}
			if len(embeddings) > 0 {
				if err := uow.MovieEmbeddingRepository().CreateBulk(ctx, embeddings); err != nil {
					_ = uow.Rollback()
					color.Red("Failed to insert embeddings for batch %d-%d: %v", start, end, err)
					os.Exit(1)
				}
				embedded += len(embeddings)
			}
		}

		if err := uow.Commit(); err != nil {
			color.Red("Failed to commit batch %d-%d: %v", start, end, err)
			os.Exit(1)
		}

		inserted += len(movies)
		color.Green("Inserted %d/%d movies", inserted, len(catalog))
	}

	color.Cyan("Seeding done: %d movies, %d embeddings, %d skipped", inserted, embedded, skipped)
}

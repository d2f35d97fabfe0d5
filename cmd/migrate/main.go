package main

import (
	"log"
	"os"

	"github.com/Salaem66/pickme2/internal/model"
	"github.com/Salaem66/pickme2/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDB(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. Pre-Migration: extensions GORM AutoMigrate doesn't handle
	log.Println("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS vector;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models
	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.Movie{},
		&model.MovieEmbedding{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Post-Migration: ANN index and search view
	log.Println("Step 3: Creating Indexes and Views...")

	postMigrationSQL := []string{
		// ANN index for cosine search. Lists sized for a catalog of a few
		// thousand movies; re-tune when the catalog grows.
		`CREATE INDEX IF NOT EXISTS idx_movie_embeddings_embedding_value
		 ON movie_embeddings USING ivfflat (embedding_value vector_cosine_ops) WITH (lists = 100);`,

		// View: searchable_movies
		`CREATE OR REPLACE VIEW searchable_movies AS
		 SELECT m.id AS movie_id, m.title, m.genres, m.watch_providers, me.embedding_value AS embedding
		 FROM movies m JOIN movie_embeddings me ON m.id = me.movie_id
		 WHERE m.deleted_at IS NULL AND me.deleted_at IS NULL;`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}

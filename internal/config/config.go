package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// ErrMissingDatabaseURL means neither DATABASE_URL nor
// POSTGRES_CONNECTION_STRING is set.
var ErrMissingDatabaseURL = errors.New("DATABASE_URL ou POSTGRES_CONNECTION_STRING não encontrada no ambiente")

const (
	defaultPDFPath    = "document.pdf"
	defaultCollection = "documents"
	defaultPort       = "8080"
)

type Config struct {
	DatabaseURL string
	Collection  string
	PDFPath     string
	Port        string
}

// Load reads .env (if present) and the process environment.
// The connection string is required; everything else has a default.
func Load() (*Config, error) {
	_ = godotenv.Load()

	databaseURL := firstEnv("DATABASE_URL", "POSTGRES_CONNECTION_STRING")
	if databaseURL == "" {
		return nil, ErrMissingDatabaseURL
	}

	cfg := &Config{
		DatabaseURL: databaseURL,
		Collection:  defaultCollection,
		PDFPath:     getEnv("PDF_PATH", defaultPDFPath),
		Port:        getEnv("PORT", defaultPort),
	}

	if name := firstEnv("PG_VECTOR_COLLECTION_NAME", "PGVECTOR_COLLECTION"); name != "" {
		cfg.Collection = name
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// firstEnv returns the first non-empty value among keys.
func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok && v != "" {
			return v
		}
	}
	return ""
}

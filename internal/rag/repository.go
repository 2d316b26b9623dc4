package rag

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
)

// CollectionInfo registra com qual provider (e dimensionalidade) uma
// coleção foi ingerida.
type CollectionInfo struct {
	Name     string
	Provider Provider
	Dims     int
}

type Repository interface {
	RegisterCollection(ctx context.Context, name string, provider Provider, dims int) error
	CollectionInfo(ctx context.Context, name string) (*CollectionInfo, error)
	AddDocuments(ctx context.Context, collection string, chunks []DocumentChunk, vectors [][]float32) error
	SearchSimilar(ctx context.Context, collection string, embedding []float32, limit int) ([]ScoredChunk, error)
}

type PgRepository struct {
	db *pgxpool.Pool
}

func NewPgRepository(db *pgxpool.Pool) *PgRepository {
	return &PgRepository{db: db}
}

// EnsureSchema cria a extensão e as tabelas na primeira escrita.
// A coluna embedding fica sem dimensão fixa para aceitar os 768 do Gemini
// ou os 1536 da OpenAI.
func (r *PgRepository) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS vector`,
		`CREATE TABLE IF NOT EXISTS rag_collection (
			name text PRIMARY KEY,
			provider text NOT NULL,
			dims int NOT NULL,
			created_at timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS rag_chunk (
			id bigserial PRIMARY KEY,
			collection text NOT NULL REFERENCES rag_collection(name),
			content text NOT NULL,
			page int NOT NULL DEFAULT 0,
			source text NOT NULL DEFAULT '',
			embedding vector NOT NULL,
			created_at timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS rag_chunk_collection_idx ON rag_chunk (collection)`,
	}

	for _, stmt := range stmts {
		if _, err := r.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (r *PgRepository) RegisterCollection(ctx context.Context, name string, provider Provider, dims int) error {
	if err := r.EnsureSchema(ctx); err != nil {
		return err
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO rag_collection (name, provider, dims)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO NOTHING
	`, name, provider, dims)
	if err != nil {
		return fmt.Errorf("register collection %q: %w", name, err)
	}
	return nil
}

// CollectionInfo retorna nil (sem erro) quando a coleção ainda não existe.
func (r *PgRepository) CollectionInfo(ctx context.Context, name string) (*CollectionInfo, error) {
	var info CollectionInfo
	err := r.db.QueryRow(ctx, `
		SELECT name, provider, dims
		FROM rag_collection
		WHERE name = $1
	`, name).Scan(&info.Name, &info.Provider, &info.Dims)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("collection info %q: %w", name, err)
	}
	return &info, nil
}

// AddDocuments insere um chunk por linha. Sem dedup: re-ingerir o mesmo
// documento anexa chunks duplicados.
func (r *PgRepository) AddDocuments(ctx context.Context, collection string, chunks []DocumentChunk, vectors [][]float32) error {
	if len(chunks) != len(vectors) {
		return fmt.Errorf("chunks (%d) e vetores (%d) com tamanhos diferentes", len(chunks), len(vectors))
	}

	for i, c := range chunks {
		vec := pgvector.NewVector(vectors[i])
		_, err := r.db.Exec(ctx, `
			INSERT INTO rag_chunk (collection, content, page, source, embedding)
			VALUES ($1, $2, $3, $4, $5)
		`, collection, c.Content, c.Page, c.Source, vec)
		if err != nil {
			return fmt.Errorf("insert chunk (page %d): %w", c.Page, err)
		}
	}
	return nil
}

// SearchSimilar faz a busca vetorial na coleção, melhor (menor distância)
// primeiro. O desempate entre distâncias iguais fica por conta do Postgres.
func (r *PgRepository) SearchSimilar(ctx context.Context, collection string, embedding []float32, limit int) ([]ScoredChunk, error) {
	if limit <= 0 {
		limit = 10
	}

	vec := pgvector.NewVector(embedding)

	rows, err := r.db.Query(ctx, `
		SELECT id, content, page, source, embedding <-> $2 AS distance
		FROM rag_chunk
		WHERE collection = $1
		ORDER BY distance
		LIMIT $3
	`, collection, vec, limit)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}
	defer rows.Close()

	var results []ScoredChunk
	for rows.Next() {
		var sc ScoredChunk
		if err := rows.Scan(&sc.ID, &sc.Content, &sc.Page, &sc.Source, &sc.Distance); err != nil {
			return nil, err
		}
		results = append(results, sc)
	}

	return results, rows.Err()
}

var _ Repository = (*PgRepository)(nil)

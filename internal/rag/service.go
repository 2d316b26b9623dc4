package rag

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// TopK é o número de chunks recuperados por pergunta.
const TopK = 10

type Service struct {
	repo       Repository
	provider   Provider
	embeddings EmbeddingsClient
	llm        LLMClient
}

func NewService(repo Repository, provider Provider, embeddings EmbeddingsClient, llm LLMClient) *Service {
	return &Service{
		repo:       repo,
		provider:   provider,
		embeddings: embeddings,
		llm:        llm,
	}
}

// Ingest divide as páginas em chunks, calcula os embeddings e grava tudo
// na coleção. Todo erro sobe para o chamador.
func (s *Service) Ingest(ctx context.Context, collection string, docs []PageDocument) (int, error) {
	chunks := SplitDocuments(docs)
	if len(chunks) == 0 {
		return 0, ErrEmptyDocument
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Content
	}

	vectors, err := s.embeddings.EmbedDocuments(ctx, texts)
	if err != nil {
		return 0, fmt.Errorf("embedding: %w", err)
	}
	if len(vectors) != len(chunks) {
		return 0, fmt.Errorf("embedding: %d vetores para %d chunks", len(vectors), len(chunks))
	}

	if err := s.CheckCollection(ctx, collection); err != nil {
		return 0, err
	}
	if err := s.repo.RegisterCollection(ctx, collection, s.provider, s.embeddings.Dimensions()); err != nil {
		return 0, err
	}
	if err := s.repo.AddDocuments(ctx, collection, chunks, vectors); err != nil {
		return 0, fmt.Errorf("store: %w", err)
	}

	return len(chunks), nil
}

// CheckCollection rejeita o uso de uma coleção ingerida com outro provider.
// Coleção ainda inexistente não é erro.
func (s *Service) CheckCollection(ctx context.Context, collection string) error {
	info, err := s.repo.CollectionInfo(ctx, collection)
	if err != nil {
		return err
	}
	if info != nil && info.Provider != s.provider {
		return fmt.Errorf("%w: coleção %q foi ingerida com %q, configurado %q",
			ErrProviderMismatch, collection, info.Provider, s.provider)
	}
	return nil
}

// SearchPrompt busca os TopK chunks mais próximos da pergunta e monta o
// prompt de grounding. Pergunta vazia retorna "" sem chamada externa.
// Falha na busca é logada e também vira "", nunca erro: o chat segue vivo.
func (s *Service) SearchPrompt(ctx context.Context, collection, question string) (string, error) {
	q := strings.TrimSpace(question)
	if q == "" {
		return "", nil
	}

	if err := s.CheckCollection(ctx, collection); err != nil {
		return "", err
	}

	vec, err := s.embeddings.EmbedQuery(ctx, q)
	if err != nil {
		log.Printf("❌ Erro na busca: %v", err)
		return "", nil
	}

	results, err := s.repo.SearchSimilar(ctx, collection, vec, TopK)
	if err != nil {
		log.Printf("❌ Erro na busca: %v", err)
		return "", nil
	}

	contexts := make([]string, 0, len(results))
	for _, r := range results {
		contexts = append(contexts, r.Content)
	}

	return BuildPrompt(contexts, q), nil
}

// Generate faz uma única chamada bloqueante ao LLM com um prompt já montado.
func (s *Service) Generate(ctx context.Context, prompt string) (string, error) {
	return s.llm.Generate(ctx, prompt)
}

// Answer monta o prompt e faz uma única chamada bloqueante ao LLM.
// Prompt vazio (pergunta vazia ou busca falhou) não chega ao modelo.
func (s *Service) Answer(ctx context.Context, collection, question string) (string, error) {
	prompt, err := s.SearchPrompt(ctx, collection, question)
	if err != nil {
		return "", err
	}
	if prompt == "" {
		return "", nil
	}
	return s.llm.Generate(ctx, prompt)
}

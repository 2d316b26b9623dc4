package rag

import "context"

// EmbeddingsClient é o backend de embeddings (OpenAI ou Google).
// Ingestão e busca PRECISAM usar o mesmo, senão os vetores não se comparam.
type EmbeddingsClient interface {
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
	Dimensions() int
}

// LLMClient gera a resposta final a partir do prompt montado.
type LLMClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

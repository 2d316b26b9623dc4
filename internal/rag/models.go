package rag

import (
	"fmt"
	"strings"
)

// Provider identifica qual backend de embeddings/LLM está em uso.
// Já deixo tipado p/ evitar string solta no código.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGoogle Provider = "google"
)

// ParseProvider normaliza e valida o nome do provider.
func ParseProvider(s string) (Provider, error) {
	switch Provider(strings.ToLower(strings.TrimSpace(s))) {
	case ProviderOpenAI:
		return ProviderOpenAI, nil
	case ProviderGoogle:
		return ProviderGoogle, nil
	default:
		return "", fmt.Errorf("%w: %q (use 'openai' ou 'google')", ErrUnsupportedProvider, s)
	}
}

// PageDocument
// Texto de uma página do documento de origem, antes do split.
type PageDocument struct {
	Content string `json:"content"`
	Page    int    `json:"page"`
	Source  string `json:"source"`
}

// DocumentChunk
// Um pedaço do documento: a unidade de armazenamento e busca.
type DocumentChunk struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
	Page    int    `json:"page"`
	Source  string `json:"source"`
}

// ScoredChunk
// Chunk retornado pela busca vetorial com sua distância.
// Distância menor = mais similar.
type ScoredChunk struct {
	DocumentChunk
	Distance float64 `json:"distance"`
}

// AskRequest é o payload da API /ask.
type AskRequest struct {
	Question string `json:"question"`
}

// AskResponse é a resposta da API: pergunta + texto gerado.
type AskResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

package llm

import (
	"context"
	"fmt"
	"log"

	"github.com/josinaldojr/pdf-rag-chat/internal/rag"
)

// Client reúne embeddings e geração: cada provider implementa os dois lados
// com o mesmo espaço vetorial.
type Client interface {
	rag.EmbeddingsClient
	rag.LLMClient
}

// New resolve o provider uma vez por invocação. Cada ramo valida a
// credencial no ambiente antes de construir qualquer cliente de rede.
func New(ctx context.Context, provider rag.Provider) (Client, error) {
	switch provider {
	case rag.ProviderOpenAI:
		log.Println("🔑 Usando OpenAI")
		return NewOpenAIClient()
	case rag.ProviderGoogle:
		log.Println("🔑 Usando Google Gemini")
		return NewGeminiClient(ctx)
	default:
		return nil, fmt.Errorf("%w: %q (use 'openai' ou 'google')", rag.ErrUnsupportedProvider, provider)
	}
}

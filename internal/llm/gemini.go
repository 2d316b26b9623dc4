package llm

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/josinaldojr/pdf-rag-chat/internal/rag"
	"google.golang.org/genai"
)

const (
	geminiEmbeddingModel = "models/text-embedding-004"
	geminiChatModel      = "gemini-2.5-flash-lite"
	geminiEmbedDim       = 768
)

type GeminiClient struct {
	client *genai.Client
}

func NewGeminiClient(ctx context.Context) (*GeminiClient, error) {
	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: GOOGLE_API_KEY não encontrada no .env", rag.ErrMissingCredential)
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiClient{client: c}, nil
}

func (g *GeminiClient) Dimensions() int { return geminiEmbedDim }

func (g *GeminiClient) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, 0, len(texts))
	for _, t := range texts {
		vec, err := g.embed(ctx, t)
		if err != nil {
			return nil, err
		}
		vectors = append(vectors, vec)
	}
	return vectors, nil
}

func (g *GeminiClient) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	return g.embed(ctx, text)
}

func (g *GeminiClient) embed(ctx context.Context, text string) ([]float32, error) {
	clean := strings.TrimSpace(text)
	if clean == "" {
		return nil, fmt.Errorf("empty text for embedding")
	}

	resp, err := g.client.Models.EmbedContent(
		ctx,
		geminiEmbeddingModel,
		genai.Text(clean),
		&genai.EmbedContentConfig{
			OutputDimensionality: genai.Ptr(int32(geminiEmbedDim)),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini embed error: %w", err)
	}

	if len(resp.Embeddings) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}

	values := resp.Embeddings[0].Values
	if len(values) != geminiEmbedDim {
		return nil, fmt.Errorf("unexpected embedding size %d (expected %d)", len(values), geminiEmbedDim)
	}

	out := make([]float32, geminiEmbedDim)
	copy(out, values)
	return out, nil
}

// Generate faz uma única chamada bloqueante, temperature 0.0 e teto de
// 500 tokens de saída. Sem retry, sem streaming.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(0.0)),
		MaxOutputTokens: maxOutputTokens,
	}

	resp, err := g.client.Models.GenerateContent(
		ctx,
		geminiChatModel,
		genai.Text(prompt),
		cfg,
	)
	if err != nil {
		return "", fmt.Errorf("gemini generateContent error: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	txt := strings.TrimSpace(resp.Text())
	if txt == "" {
		return "", fmt.Errorf("model returned empty text")
	}

	return txt, nil
}

var _ Client = (*GeminiClient)(nil)

package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/josinaldojr/pdf-rag-chat/internal/rag"
)

const (
	openAIBaseURL        = "https://api.openai.com"
	openAIChatModel      = "gpt-5-nano"
	openAIEmbeddingModel = "text-embedding-3-small"
	openAIEmbedDim       = 1536

	maxOutputTokens = 500
)

// OpenAIClient fala com os endpoints de embeddings e chat completions.
type OpenAIClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewOpenAIClient() (*OpenAIClient, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("%w: OPENAI_API_KEY não encontrada no .env", rag.ErrMissingCredential)
	}

	return &OpenAIClient{
		httpClient: &http.Client{Timeout: 120 * time.Second},
		baseURL:    openAIBaseURL,
		apiKey:     apiKey,
	}, nil
}

// SetBaseURL aponta o cliente para outro backend compatível. Usado nos testes.
func (c *OpenAIClient) SetBaseURL(u string) {
	c.baseURL = strings.TrimRight(u, "/")
}

func (c *OpenAIClient) Dimensions() int { return openAIEmbedDim }

type openAIEmbeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type openAIEmbeddingResponse struct {
	Data []struct {
		Index     int       `json:"index"`
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
}

func (c *OpenAIClient) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	reqBody := openAIEmbeddingRequest{
		Model: openAIEmbeddingModel,
		Input: texts,
	}

	var resp openAIEmbeddingResponse
	if err := c.post(ctx, "/v1/embeddings", reqBody, &resp); err != nil {
		return nil, fmt.Errorf("openai embed error: %w", err)
	}

	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("openai embed: %d embeddings para %d textos", len(resp.Data), len(texts))
	}

	// A API documenta a ordem pelo campo index; não confio na ordem do array.
	sort.Slice(resp.Data, func(i, j int) bool { return resp.Data[i].Index < resp.Data[j].Index })

	vectors := make([][]float32, len(resp.Data))
	for i, d := range resp.Data {
		vectors[i] = d.Embedding
	}
	return vectors, nil
}

func (c *OpenAIClient) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	vectors, err := c.EmbedDocuments(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("openai embed: no embeddings returned")
	}
	return vectors[0], nil
}

type openAIChatRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float32         `json:"temperature"`
	MaxTokens   int             `json:"max_tokens"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIChatResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
}

// Generate faz uma única chamada bloqueante ao chat completions,
// temperature 0.0 e max_tokens 500. Sem retry, sem streaming.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := openAIChatRequest{
		Model:       openAIChatModel,
		Messages:    []openAIMessage{{Role: "user", Content: prompt}},
		Temperature: 0.0,
		MaxTokens:   maxOutputTokens,
	}

	var resp openAIChatResponse
	if err := c.post(ctx, "/v1/chat/completions", reqBody, &resp); err != nil {
		return "", fmt.Errorf("openai chat error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai chat: empty choices")
	}

	txt := strings.TrimSpace(resp.Choices[0].Message.Content)
	if txt == "" {
		return "", fmt.Errorf("openai chat: model returned empty text")
	}
	return txt, nil
}

func (c *OpenAIClient) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(httpResp.Body, 2048))
		return fmt.Errorf("status %d: %s", httpResp.StatusCode, strings.TrimSpace(string(msg)))
	}

	if err := json.NewDecoder(httpResp.Body).Decode(out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}

var _ Client = (*OpenAIClient)(nil)

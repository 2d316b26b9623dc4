package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOpenAIClient(t *testing.T, handler http.Handler) *OpenAIClient {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "test-key")

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewOpenAIClient()
	require.NoError(t, err)
	client.SetBaseURL(server.URL)
	return client
}

func TestOpenAIEmbedDocuments(t *testing.T) {
	client := newTestOpenAIClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/embeddings", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req openAIEmbeddingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, openAIEmbeddingModel, req.Model)
		require.Len(t, req.Input, 2)

		// Fora de ordem de propósito: o cliente deve reordenar pelo index.
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"index": 1, "embedding": []float32{4, 5, 6}},
				{"index": 0, "embedding": []float32{1, 2, 3}},
			},
		})
	}))

	vectors, err := client.EmbedDocuments(context.Background(), []string{"primeiro", "segundo"})
	require.NoError(t, err)
	require.Len(t, vectors, 2)
	assert.Equal(t, []float32{1, 2, 3}, vectors[0])
	assert.Equal(t, []float32{4, 5, 6}, vectors[1])
}

func TestOpenAIEmbedQuery(t *testing.T) {
	client := newTestOpenAIClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"index": 0, "embedding": []float32{0.5, 0.5}},
			},
		})
	}))

	vec, err := client.EmbedQuery(context.Background(), "pergunta")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, 0.5}, vec)
}

func TestOpenAIGenerate(t *testing.T) {
	client := newTestOpenAIClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)

		var req openAIChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, openAIChatModel, req.Model)
		assert.Equal(t, float32(0.0), req.Temperature)
		assert.Equal(t, maxOutputTokens, req.MaxTokens)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "  resposta gerada  "}},
			},
		})
	}))

	answer, err := client.Generate(context.Background(), "prompt montado")
	require.NoError(t, err)
	assert.Equal(t, "resposta gerada", answer)
}

func TestOpenAIAPIError(t *testing.T) {
	client := newTestOpenAIClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "invalid api key"}}`, http.StatusUnauthorized)
	}))

	_, err := client.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestOpenAIEmptyChoices(t *testing.T) {
	client := newTestOpenAIClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))

	_, err := client.Generate(context.Background(), "prompt")
	require.Error(t, err)
}

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/josinaldojr/pdf-rag-chat/internal/rag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	results []rag.ScoredChunk
}

func (s *stubRepo) RegisterCollection(context.Context, string, rag.Provider, int) error {
	return nil
}

func (s *stubRepo) CollectionInfo(context.Context, string) (*rag.CollectionInfo, error) {
	return nil, nil
}

func (s *stubRepo) AddDocuments(context.Context, string, []rag.DocumentChunk, [][]float32) error {
	return nil
}

func (s *stubRepo) SearchSimilar(context.Context, string, []float32, int) ([]rag.ScoredChunk, error) {
	return s.results, nil
}

type stubClient struct {
	answer string
}

func (s *stubClient) EmbedDocuments(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{1}
	}
	return out, nil
}

func (s *stubClient) EmbedQuery(context.Context, string) ([]float32, error) {
	return []float32{1}, nil
}

func (s *stubClient) Dimensions() int { return 1 }

func (s *stubClient) Generate(context.Context, string) (string, error) {
	return s.answer, nil
}

func newTestRouter(answer string, results []rag.ScoredChunk) http.Handler {
	client := &stubClient{answer: answer}
	svc := rag.NewService(&stubRepo{results: results}, rag.ProviderOpenAI, client, client)
	return NewRouter(NewHandler(svc, "documents"))
}

func TestHealth(t *testing.T) {
	router := newTestRouter("", nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestAsk(t *testing.T) {
	results := []rag.ScoredChunk{
		{DocumentChunk: rag.DocumentChunk{Content: "O faturamento foi de R$ 10 milhões."}, Distance: 0.1},
	}
	router := newTestRouter("O faturamento foi de R$ 10 milhões.", results)

	body := strings.NewReader(`{"question": "Qual o faturamento?"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ask", body))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp rag.AskResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Qual o faturamento?", resp.Question)
	assert.Equal(t, "O faturamento foi de R$ 10 milhões.", resp.Answer)
}

func TestAskInvalidBody(t *testing.T) {
	router := newTestRouter("", nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader("{não é json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAskEmptyQuestion(t *testing.T) {
	router := newTestRouter("qualquer", nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(`{"question": ""}`)))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp rag.AskResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Empty(t, resp.Answer)
}

package llm

import (
	"context"
	"testing"

	"github.com/josinaldojr/pdf-rag-chat/internal/rag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenAIWithoutKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := New(context.Background(), rag.ProviderOpenAI)
	require.Error(t, err)
	assert.ErrorIs(t, err, rag.ErrMissingCredential)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestNewGoogleWithoutKey(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	_, err := New(context.Background(), rag.ProviderGoogle)
	require.Error(t, err)
	assert.ErrorIs(t, err, rag.ErrMissingCredential)
	assert.Contains(t, err.Error(), "GOOGLE_API_KEY")
}

func TestNewUnsupportedProvider(t *testing.T) {
	_, err := New(context.Background(), rag.Provider("cohere"))
	require.Error(t, err)
	assert.ErrorIs(t, err, rag.ErrUnsupportedProvider)
	assert.Contains(t, err.Error(), "cohere")
}

func TestNewOpenAIWithKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")

	client, err := New(context.Background(), rag.ProviderOpenAI)
	require.NoError(t, err)
	assert.Equal(t, 1536, client.Dimensions())
}

package llm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prachipatil7/RetroUIMaker/internal/llm"
)

// chatServer returns a test server that captures the request body and
// responds with the given handler.
func chatServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestNewOpenAIProvider_EmptyKey(t *testing.T) {
	p, err := llm.NewOpenAIProvider("")
	assert.Nil(t, p)
	assert.Error(t, err)
}

func TestOpenAIProvider_DefaultModel(t *testing.T) {
	p, err := llm.NewOpenAIProvider("sk-test")
	require.NoError(t, err)
	assert.Equal(t, "gpt-5-2025-08-07", p.Model())
}

func TestOpenAIProvider_Complete_Success(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	srv := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		resp := map[string]any{
			"model": "gpt-5-2025-08-07",
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "<!DOCTYPE html><html></html>\n"}},
			},
			"usage": map[string]any{
				"prompt_tokens":     100,
				"completion_tokens": 40,
				"total_tokens":      140,
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	p, err := llm.NewOpenAIProvider("sk-test", llm.WithBaseURL(srv.URL))
	require.NoError(t, err)

	resp, err := p.Complete(context.Background(), llm.Request{
		System: "you are an expert",
		Prompt: "simplify this",
	})
	require.NoError(t, err)

	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "gpt-5-2025-08-07", gotBody["model"])

	messages := gotBody["messages"].([]any)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]any)["role"])
	assert.Equal(t, "you are an expert", messages[0].(map[string]any)["content"])
	assert.Equal(t, "user", messages[1].(map[string]any)["role"])
	assert.Equal(t, "simplify this", messages[1].(map[string]any)["content"])

	// Response content is trimmed, usage mapped.
	assert.Equal(t, "<!DOCTYPE html><html></html>", resp.Content)
	assert.Equal(t, llm.Usage{InputTokens: 100, OutputTokens: 40}, resp.Usage)
	assert.Equal(t, 140, resp.Usage.Total())
}

func TestOpenAIProvider_Complete_ModelOverride(t *testing.T) {
	var gotBody map[string]any
	srv := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"model":"gpt-4o","choices":[{"message":{"content":"x"}}],"usage":{}}`))
	})

	p, err := llm.NewOpenAIProvider("sk-test", llm.WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = p.Complete(context.Background(), llm.Request{Prompt: "p", Model: "gpt-4o"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", gotBody["model"])
}

func TestOpenAIProvider_Complete_APIError(t *testing.T) {
	srv := chatServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
	})

	p, err := llm.NewOpenAIProvider("sk-bad", llm.WithBaseURL(srv.URL))
	require.NoError(t, err)

	resp, err := p.Complete(context.Background(), llm.Request{Prompt: "p"})
	assert.Nil(t, resp)

	var perr *llm.ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "openai", perr.Provider)
	assert.Contains(t, err.Error(), "status 401")
}

func TestOpenAIProvider_Complete_NoChoices(t *testing.T) {
	srv := chatServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"model":"gpt-5","choices":[],"usage":{}}`))
	})

	p, err := llm.NewOpenAIProvider("sk-test", llm.WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = p.Complete(context.Background(), llm.Request{Prompt: "p"})
	var perr *llm.ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, err.Error(), "no choices")
}

func TestOpenAIProvider_Complete_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	p, err := llm.NewOpenAIProvider("sk-test", llm.WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = p.Complete(context.Background(), llm.Request{Prompt: "p"})
	var perr *llm.ProviderError
	require.ErrorAs(t, err, &perr)
}

func TestOpenAIProvider_Complete_ContextCancelled(t *testing.T) {
	srv := chatServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"x"}}]}`))
	})

	p, err := llm.NewOpenAIProvider("sk-test", llm.WithBaseURL(srv.URL))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = p.Complete(ctx, llm.Request{Prompt: "p"})
	require.Error(t, err)
}

package llm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prachipatil7/RetroUIMaker/internal/llm"
)

func TestMockProvider_NoResponses(t *testing.T) {
	m := llm.NewMockProvider()

	resp, err := m.Complete(context.Background(), llm.Request{Prompt: "hi"})
	require.NoError(t, err)
	assert.Empty(t, resp.Content)
	assert.Equal(t, "mock", resp.Model)
}

func TestMockProvider_SequencedResponses(t *testing.T) {
	m := llm.NewMockProvider(
		llm.MockResponse{Content: "first"},
		llm.MockResponse{Content: "second"},
	)

	r1, err := m.Complete(context.Background(), llm.Request{Prompt: "a"})
	require.NoError(t, err)
	r2, err := m.Complete(context.Background(), llm.Request{Prompt: "b"})
	require.NoError(t, err)
	r3, err := m.Complete(context.Background(), llm.Request{Prompt: "c"})
	require.NoError(t, err)

	assert.Equal(t, "first", r1.Content)
	assert.Equal(t, "second", r2.Content)
	assert.Equal(t, "second", r3.Content, "last response repeats after exhaustion")
}

func TestMockProvider_CannedError(t *testing.T) {
	boom := errors.New("provider down")
	m := llm.NewMockProvider(llm.MockResponse{Err: boom})

	_, err := m.Complete(context.Background(), llm.Request{Prompt: "x"})
	assert.ErrorIs(t, err, boom)
}

func TestMockProvider_CannedUsage(t *testing.T) {
	m := llm.NewMockProvider(llm.MockResponse{
		Content: "html",
		Usage:   llm.Usage{InputTokens: 200, OutputTokens: 80},
	})

	resp, err := m.Complete(context.Background(), llm.Request{Prompt: "x"})
	require.NoError(t, err)
	assert.Equal(t, 280, resp.Usage.Total())
}

func TestMockProvider_DefaultUsage(t *testing.T) {
	m := llm.NewMockProvider(llm.MockResponse{Content: "html"})

	resp, err := m.Complete(context.Background(), llm.Request{Prompt: "x"})
	require.NoError(t, err)
	assert.Equal(t, llm.Usage{InputTokens: 10, OutputTokens: 5}, resp.Usage)
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	m := llm.NewMockProvider(llm.MockResponse{Content: "ok"})

	_, err := m.Complete(context.Background(), llm.Request{System: "sys", Prompt: "user msg"})
	require.NoError(t, err)

	calls := m.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "sys", calls[0].System)
	assert.Equal(t, "user msg", calls[0].Prompt)
}

func TestMockProvider_Reset(t *testing.T) {
	m := llm.NewMockProvider(llm.MockResponse{Content: "a"}, llm.MockResponse{Content: "b"})

	_, _ = m.Complete(context.Background(), llm.Request{})
	_, _ = m.Complete(context.Background(), llm.Request{})
	m.Reset()

	assert.Empty(t, m.Calls())
	resp, err := m.Complete(context.Background(), llm.Request{})
	require.NoError(t, err)
	assert.Equal(t, "a", resp.Content)
}

func TestMockProvider_ContextCancelled(t *testing.T) {
	m := llm.NewMockProvider(llm.MockResponse{Content: "a"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Complete(ctx, llm.Request{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, m.Calls())
}

// Package llm provides a provider-agnostic completion client interface and
// implementations for the hosted models retroui can talk to.
package llm

import "context"

// Provider abstracts an LLM API behind a single synchronous completion
// method so it can be substituted with a deterministic stand-in for testing.
type Provider interface {
	// Complete sends one system message and one user message to the model
	// and returns the full response. No streaming, no retries at this layer.
	// Implementations must respect context cancellation and deadlines.
	Complete(ctx context.Context, req Request) (*Response, error)
}

// Request describes a single completion request.
type Request struct {
	// System sets the system-role instruction for the completion.
	System string

	// Prompt is the user-role message to send.
	Prompt string

	// Model overrides the provider's default model. If empty, the provider
	// uses its configured default.
	Model string

	// MaxTokens limits the response length. If zero, the provider uses its
	// own default.
	MaxTokens int
}

// Response holds the result of a completion call.
type Response struct {
	// Content is the text returned by the model.
	Content string

	// Model is the model that actually served the request (may differ from
	// the requested model if the provider remapped it).
	Model string

	// Usage reports token consumption.
	Usage Usage
}

// Usage tracks input and output token counts for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Total returns the combined token count for the exchange.
func (u Usage) Total() int {
	return u.InputTokens + u.OutputTokens
}

// EstimateCostUSD converts token usage into an approximate dollar cost at a
// blended per-million-token rate. The figure is a diagnostic side channel,
// never part of the primary output.
func EstimateCostUSD(u Usage, ratePerMTokUSD float64) float64 {
	return float64(u.Total()) * ratePerMTokUSD / 1_000_000
}

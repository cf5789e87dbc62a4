package llm

import "fmt"

// ProviderError wraps any transport, authentication, or service-side failure
// from a completion call. The pipeline treats all provider failures alike;
// callers that need the distinction can still errors.As into the cause.
type ProviderError struct {
	// Provider names the backend that failed ("openai", "anthropic").
	Provider string

	// Err is the underlying cause.
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: completion failed: %v", e.Provider, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *ProviderError) Unwrap() error { return e.Err }

// Package tokens bounds text to a token budget under a model's encoding
// scheme, using tiktoken codecs.
package tokens

import (
	"fmt"
	"strings"

	"github.com/tiktoken-go/tokenizer"
)

// Truncator encodes text with the codec for a specific model and cuts it to
// a maximum token count. It is stateless after construction and safe for
// reuse across calls.
type Truncator struct {
	model string
	codec tokenizer.Codec
}

// NewTruncator resolves the tokenizer codec for the given model. Known
// OpenAI models resolve exactly via tokenizer.ForModel; everything else
// falls back to an encoding chosen by model-name prefix.
func NewTruncator(model string) (*Truncator, error) {
	codec, err := tokenizer.ForModel(tokenizer.Model(model))
	if err != nil {
		codec, err = tokenizer.Get(encodingForModel(model))
		if err != nil {
			return nil, fmt.Errorf("tokens: no codec for model %q: %w", model, err)
		}
	}
	return &Truncator{model: model, codec: codec}, nil
}

// encodingForModel maps a model name to a fallback encoding.
// Anthropic does not publish its tokenizer, so claude-* models use
// o200k_base as the nearest public encoding; the budget stays approximate
// but conservative enough in practice.
func encodingForModel(model string) tokenizer.Encoding {
	model = strings.ToLower(model)
	switch {
	case strings.HasPrefix(model, "gpt-4o"), strings.HasPrefix(model, "gpt-4.1"):
		return tokenizer.O200kBase
	case strings.HasPrefix(model, "gpt-4"), strings.HasPrefix(model, "gpt-3.5"):
		return tokenizer.Cl100kBase
	default:
		// gpt-5 and newer, o-series, claude-*, unknown models.
		return tokenizer.O200kBase
	}
}

// Truncate returns a prefix of text that encodes to at most max tokens,
// and reports whether any truncation occurred. Text already within the
// budget is returned unchanged, byte for byte. Truncation is ordinary
// behavior, not an error.
func (t *Truncator) Truncate(text string, max int) (string, bool, error) {
	ids, _, err := t.codec.Encode(text)
	if err != nil {
		return "", false, fmt.Errorf("tokens: encode for %s: %w", t.model, err)
	}
	if len(ids) <= max {
		return text, false, nil
	}

	out, err := t.codec.Decode(ids[:max])
	if err != nil {
		return "", false, fmt.Errorf("tokens: decode for %s: %w", t.model, err)
	}
	return out, true, nil
}

// Count returns the number of tokens text encodes to.
func (t *Truncator) Count(text string) (int, error) {
	ids, _, err := t.codec.Encode(text)
	if err != nil {
		return 0, fmt.Errorf("tokens: encode for %s: %w", t.model, err)
	}
	return len(ids), nil
}

// Model returns the model name this truncator was built for.
func (t *Truncator) Model() string { return t.model }

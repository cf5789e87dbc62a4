// Package config handles .retroui.yaml configuration files and the
// credential pre-flight check.
package config

import (
	"fmt"
	"os"
)

// FileName is the expected config file name in the working directory.
const FileName = ".retroui.yaml"

// Provider names accepted in the config file.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Defaults applied when the config file is absent or leaves fields unset.
// The OpenAI model and token budget match the tool's original behavior.
const (
	DefaultProvider       = ProviderOpenAI
	DefaultOpenAIModel    = "gpt-5-2025-08-07"
	DefaultAnthropicModel = "claude-sonnet-4-5-20250929"
	DefaultMaxInputTokens = 150000
	DefaultOutputDir      = "output"
	DefaultCostPerMTokUSD = 1.5
)

// Config represents the contents of a .retroui.yaml file. It is resolved
// once at process start and passed down read-only.
type Config struct {
	Provider       string  `yaml:"provider,omitempty"`
	Model          string  `yaml:"model,omitempty"`
	MaxInputTokens int     `yaml:"max_input_tokens,omitempty"`
	OutputDir      string  `yaml:"output_dir,omitempty"`
	CostPerMTokUSD float64 `yaml:"cost_per_mtok_usd,omitempty"`
}

// ApplyDefaults fills unset fields with their default values. The default
// model depends on the resolved provider.
func (c *Config) ApplyDefaults() {
	if c.Provider == "" {
		c.Provider = DefaultProvider
	}
	if c.Model == "" {
		switch c.Provider {
		case ProviderAnthropic:
			c.Model = DefaultAnthropicModel
		default:
			c.Model = DefaultOpenAIModel
		}
	}
	if c.MaxInputTokens == 0 {
		c.MaxInputTokens = DefaultMaxInputTokens
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.CostPerMTokUSD == 0 {
		c.CostPerMTokUSD = DefaultCostPerMTokUSD
	}
}

// Validate checks field values after defaults are applied.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderOpenAI, ProviderAnthropic:
	default:
		return &Error{Reason: fmt.Sprintf("unknown provider %q (want %q or %q)", c.Provider, ProviderOpenAI, ProviderAnthropic)}
	}
	if c.MaxInputTokens < 0 {
		return &Error{Reason: fmt.Sprintf("max_input_tokens must be positive (got %d)", c.MaxInputTokens)}
	}
	return nil
}

// CredentialVar returns the environment variable that must hold the API key
// for the configured provider.
func (c *Config) CredentialVar() string {
	if c.Provider == ProviderAnthropic {
		return "ANTHROPIC_API_KEY"
	}
	return "OPENAI_API_KEY"
}

// Credential reads the provider API key from the environment. An empty or
// unset variable is an *Error; this runs before any file or network I/O.
func (c *Config) Credential() (string, error) {
	name := c.CredentialVar()
	key := os.Getenv(name)
	if key == "" {
		return "", &Error{Reason: fmt.Sprintf("%s environment variable is required", name)}
	}
	return key, nil
}

// Error reports invalid or missing configuration, including a missing
// credential.
type Error struct {
	Reason string
}

func (e *Error) Error() string { return "config: " + e.Reason }

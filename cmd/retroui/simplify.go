// Copyright 2026 The RetroUIMaker Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/prachipatil7/RetroUIMaker/internal/config"
	"github.com/prachipatil7/RetroUIMaker/internal/document"
	"github.com/prachipatil7/RetroUIMaker/internal/llm"
	retrouilog "github.com/prachipatil7/RetroUIMaker/internal/log"
	"github.com/prachipatil7/RetroUIMaker/internal/output"
	"github.com/prachipatil7/RetroUIMaker/internal/pipeline"
	"github.com/prachipatil7/RetroUIMaker/internal/tokens"
)

// Simplify-specific flag values.
var (
	simplifyOutput    string
	simplifyModel     string
	simplifyOutputDir string
)

// Diagnostic color printers. Diagnostics go to stderr; the generated
// document never does.
var (
	costColor    = color.New(color.FgCyan)
	successColor = color.New(color.FgGreen)
)

// simplifyCmd is the subcommand that runs the simplification pipeline.
var simplifyCmd = &cobra.Command{
	Use:   "simplify <input-file> <intent>",
	Short: "Generate a simplified page focused on one user intent",
	Long: `Simplify reads an HTML file, sends it with the given intent to the
configured completion provider, and writes the model's simplified document
under the output directory.

The provider API key is read from OPENAI_API_KEY (or ANTHROPIC_API_KEY when
provider: anthropic is configured); a .env file in the working directory is
honored. Defaults can be overridden in .retroui.yaml.`,
	Example: `  retroui simplify input/dashboard.html "help user view their account balance"
  retroui simplify input/shop.html "help user search and buy products" -o shopping.html`,
	Args: cobra.ExactArgs(2),
	RunE: runSimplify,
}

func init() {
	simplifyCmd.Flags().StringVarP(&simplifyOutput, "output", "o", "", "output filename (default: simplified_<input-name>.html)")
	simplifyCmd.Flags().StringVar(&simplifyModel, "model", "", "override the configured model")
	simplifyCmd.Flags().StringVar(&simplifyOutputDir, "output-dir", "", "override the configured output directory")
}

// newProvider constructs the completion client for the resolved config.
// Declared as a variable so tests can substitute a deterministic stand-in.
var newProvider = func(cfg *config.Config, apiKey string) (llm.Provider, error) {
	switch cfg.Provider {
	case config.ProviderAnthropic:
		return llm.NewAnthropicProvider(llm.WithAPIKey(apiKey), llm.WithModel(cfg.Model))
	default:
		return llm.NewOpenAIProvider(apiKey, llm.WithOpenAIModel(cfg.Model))
	}
}

func runSimplify(cmd *cobra.Command, args []string) error {
	inputPath, intent := args[0], args[1]
	if strings.TrimSpace(intent) == "" {
		return exitError(ExitInvalidArgs, "retroui: intent must not be empty")
	}

	cfg, err := config.Load(".")
	if err != nil {
		return exitError(ExitConfig, "retroui: reading %s: %v", config.FileName, err)
	}
	if simplifyModel != "" {
		cfg.Model = simplifyModel
	}
	if simplifyOutputDir != "" {
		cfg.OutputDir = simplifyOutputDir
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return exitError(ExitConfig, "retroui: %v", err)
	}

	// Credential pre-flight, before any file or network operation.
	apiKey, err := cfg.Credential()
	if err != nil {
		return exitError(ExitConfig, "retroui: %v", err)
	}

	if !document.NewLoader(nil).Exists(inputPath) {
		return exitError(ExitInvalidArgs, "retroui: input file %q not found", inputPath)
	}

	logger := retrouilog.WithRun(uuid.NewString())

	provider, err := newProvider(cfg, apiKey)
	if err != nil {
		return exitError(ExitConfig, "retroui: %v", err)
	}
	truncator, err := tokens.NewTruncator(cfg.Model)
	if err != nil {
		return exitError(ExitConfig, "retroui: %v", err)
	}

	p := pipeline.New(cfg, provider, truncator, nil, logger)
	res, err := p.Run(cmd.Context(), inputPath, intent, simplifyOutput)
	if err != nil {
		return mapPipelineError(err)
	}

	costColor.Fprintf(cmd.ErrOrStderr(), "estimated cost: $%.6f (%d tokens)\n", res.CostUSD, res.Usage.Total())
	successColor.Fprintf(cmd.OutOrStdout(), "Success! Simplified UI created: %s\n", res.OutputPath)
	return nil
}

// mapPipelineError turns a pipeline failure into the exit code for its
// error kind.
func mapPipelineError(err error) error {
	var perr *llm.ProviderError
	switch {
	case errors.Is(err, document.ErrNotFound), errors.Is(err, document.ErrRead):
		return exitError(ExitInvalidArgs, "retroui: %v", err)
	case errors.As(err, &perr):
		return exitError(ExitProvider, "retroui: %v", err)
	case errors.Is(err, output.ErrWrite):
		return exitError(ExitWrite, "retroui: %v", err)
	default:
		return fmt.Errorf("retroui: %w", err)
	}
}

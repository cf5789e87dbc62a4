// Copyright 2026 The RetroUIMaker Authors
// SPDX-License-Identifier: MIT

// Package pipeline sequences the simplification stages: load the document,
// bound it to the token budget, build the prompt, call the completion
// provider, and write the result. Each stage passes an immutable value to
// the next; the pipeline aborts on the first failure, so no partial output
// is ever written.
package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/prachipatil7/RetroUIMaker/internal/config"
	"github.com/prachipatil7/RetroUIMaker/internal/document"
	"github.com/prachipatil7/RetroUIMaker/internal/llm"
	"github.com/prachipatil7/RetroUIMaker/internal/output"
	"github.com/prachipatil7/RetroUIMaker/internal/prompt"
	"github.com/prachipatil7/RetroUIMaker/internal/testable"
	"github.com/prachipatil7/RetroUIMaker/internal/tokens"
)

// Pipeline holds the collaborators for one simplification run. Construct it
// once per invocation; it carries no mutable state between runs.
type Pipeline struct {
	cfg       *config.Config
	loader    *document.Loader
	truncator *tokens.Truncator
	provider  llm.Provider
	writer    *output.Writer
	logger    *slog.Logger
}

// New wires a Pipeline from its collaborators. A nil fsys uses the real file
// system; a nil logger uses slog's default.
func New(cfg *config.Config, provider llm.Provider, truncator *tokens.Truncator, fsys testable.FileSystem, logger *slog.Logger) *Pipeline {
	if fsys == nil {
		fsys = testable.DefaultFS
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		cfg:       cfg,
		loader:    document.NewLoader(fsys),
		truncator: truncator,
		provider:  provider,
		writer:    output.NewWriter(fsys),
		logger:    logger,
	}
}

// Result reports what a successful run produced.
type Result struct {
	// OutputPath is where the simplified document was written.
	OutputPath string

	// Truncated reports whether the input was cut to fit the token budget.
	Truncated bool

	// InputChars and SentChars are the document sizes before and after
	// truncation, for the observable warning.
	InputChars int
	SentChars  int

	// Usage is the provider's reported token consumption.
	Usage llm.Usage

	// CostUSD is the derived cost estimate for the exchange.
	CostUSD float64
}

// Run executes the pipeline for one document and intent. overrideName, when
// non-empty, replaces the derived output filename.
func (p *Pipeline) Run(ctx context.Context, inputPath, intent, overrideName string) (*Result, error) {
	doc, err := p.loader.Load(inputPath)
	if err != nil {
		return nil, err
	}

	trimmed, truncated, err := p.truncator.Truncate(doc, p.cfg.MaxInputTokens)
	if err != nil {
		return nil, err
	}
	if truncated {
		p.logger.Warn("input trimmed to fit token budget",
			"input_chars", len(doc),
			"sent_chars", len(trimmed),
			"max_tokens", p.cfg.MaxInputTokens,
		)
	}

	p.logger.Debug("requesting completion", "model", p.cfg.Model, "provider", p.cfg.Provider)
	resp, err := p.provider.Complete(ctx, llm.Request{
		System: prompt.System(),
		Prompt: prompt.Build(trimmed, intent),
		Model:  p.cfg.Model,
	})
	if err != nil {
		return nil, err
	}

	outPath := filepath.Join(p.cfg.OutputDir, output.DeriveFilename(inputPath, overrideName))
	if err := p.writer.Write(outPath, resp.Content); err != nil {
		return nil, err
	}

	return &Result{
		OutputPath: outPath,
		Truncated:  truncated,
		InputChars: len(doc),
		SentChars:  len(trimmed),
		Usage:      resp.Usage,
		CostUSD:    llm.EstimateCostUSD(resp.Usage, p.cfg.CostPerMTokUSD),
	}, nil
}

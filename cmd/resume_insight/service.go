package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-insight/internal/analyzer"
	"github.com/jonathan/resume-insight/internal/config"
	"github.com/jonathan/resume-insight/internal/github"
	"github.com/jonathan/resume-insight/internal/llm"
	"github.com/jonathan/resume-insight/internal/logger"
)

// newService builds a fully configured analyzer for the one-shot
// commands. Unlike serve, these commands fail immediately without a
// working Gemini configuration.
func newService(ctx context.Context) (*analyzer.Analyzer, func(), error) {
	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	if cfg.Gemini.APIKey == "" {
		return nil, nil, fmt.Errorf("GOOGLE_API_KEY environment variable is required")
	}

	client, err := llm.NewGeminiClient(ctx, cfg.Gemini.APIKey, llm.Options{
		Model:           cfg.Gemini.Model,
		Temperature:     cfg.Gemini.Temperature,
		MaxOutputTokens: cfg.Gemini.MaxOutputTokens,
		Timeout:         cfg.Gemini.RequestTimeout,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	source := github.NewFetcher(&github.Options{
		Token:   cfg.GitHub.Token,
		Timeout: cfg.GitHub.Timeout,
	})

	cleanup := func() { _ = client.Close() }
	return analyzer.New(*cfg, client, source), cleanup, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, string(out))
	return nil
}

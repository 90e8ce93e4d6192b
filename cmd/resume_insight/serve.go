package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-insight/internal/analyzer"
	"github.com/jonathan/resume-insight/internal/config"
	"github.com/jonathan/resume-insight/internal/github"
	"github.com/jonathan/resume-insight/internal/llm"
	"github.com/jonathan/resume-insight/internal/logger"
	"github.com/jonathan/resume-insight/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for resume analysis, text extraction and GitHub profile analysis.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	if servePort > 0 {
		cfg.Server.Port = servePort
	}

	// A missing or invalid Gemini configuration is not fatal: the server
	// still serves extraction, and the analysis endpoints answer 503.
	var model analyzer.Generator
	if err := cfg.Validate(); err != nil {
		logger.Warn().Err(err).Msg("starting without Gemini, analysis endpoints disabled")
		if mkErr := os.MkdirAll(cfg.Upload.Dir, 0o755); mkErr != nil {
			return fmt.Errorf("failed to create upload directory %s: %w", cfg.Upload.Dir, mkErr)
		}
	} else {
		client, err := llm.NewGeminiClient(context.Background(), cfg.Gemini.APIKey, llm.Options{
			Model:           cfg.Gemini.Model,
			Temperature:     cfg.Gemini.Temperature,
			MaxOutputTokens: cfg.Gemini.MaxOutputTokens,
			Timeout:         cfg.Gemini.RequestTimeout,
		})
		if err != nil {
			logger.Warn().Err(err).Msg("Gemini client unavailable, analysis endpoints disabled")
		} else {
			model = client
			defer func() { _ = client.Close() }()
		}
	}

	source := github.NewFetcher(&github.Options{
		Token:   cfg.GitHub.Token,
		Timeout: cfg.GitHub.Timeout,
	})

	svc := analyzer.New(*cfg, model, source)
	return server.New(*cfg, svc).Start()
}

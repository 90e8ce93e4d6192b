package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-insight/internal/analyzer"
	"github.com/jonathan/resume-insight/internal/config"
	"github.com/jonathan/resume-insight/internal/logger"
	"github.com/jonathan/resume-insight/internal/observability"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract and clean text from a resume file",
	Long:  "Extracts text from a resume file, runs the cleaning pipeline and prints the result with text statistics. Works without a Gemini API key.",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

var extractAggressive bool

func init() {
	extractCmd.Flags().BoolVar(&extractAggressive, "aggressive", false, "Strip special characters during cleaning")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, args []string) error {
	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	// Extraction never calls the model, so no client is needed.
	svc := analyzer.New(*cfg, nil, nil)

	report, err := svc.ExtractText(args[0], extractAggressive)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	report.Filename = filepath.Base(args[0])

	observability.NewPrinter(os.Stdout).PrintExtractReport(report)
	return nil
}

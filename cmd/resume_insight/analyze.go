package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-insight/internal/observability"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a resume file",
	Long:  "Extracts text from a resume file (PDF, DOCX, DOC or TXT), analyzes skills and experience with Gemini, and prints the report. With --github the report also covers the given GitHub profile.",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

var (
	analyzeGitHubUser string
	analyzeJSON       bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeGitHubUser, "github", "", "GitHub username for a combined analysis")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the full report as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	svc, cleanup, err := newService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	printer := observability.NewPrinter(os.Stdout)

	if analyzeGitHubUser != "" {
		report, err := svc.AnalyzeCombined(ctx, args[0], analyzeGitHubUser)
		if err != nil {
			return fmt.Errorf("combined analysis failed: %w", err)
		}
		if analyzeJSON {
			return printJSON(report)
		}
		printer.PrintCombinedReport(report)
		return nil
	}

	report, err := svc.AnalyzeResume(ctx, args[0])
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	if analyzeJSON {
		return printJSON(report)
	}

	_, _ = fmt.Fprintf(os.Stdout, "%s\n", report.Message)
	printer.PrintResumeReport(report)
	return nil
}

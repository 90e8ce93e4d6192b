package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-insight/internal/observability"
	"github.com/spf13/cobra"
)

var githubCmd = &cobra.Command{
	Use:   "github <username>",
	Short: "Analyze a GitHub profile",
	Long:  "Fetches a public GitHub profile and its repositories, analyzes them with Gemini and prints the assessment.",
	Args:  cobra.ExactArgs(1),
	RunE:  runGitHub,
}

var githubJSON bool

func init() {
	githubCmd.Flags().BoolVar(&githubJSON, "json", false, "Print the full report as JSON")
	rootCmd.AddCommand(githubCmd)
}

func runGitHub(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	svc, cleanup, err := newService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	report, err := svc.AnalyzeProfile(ctx, args[0])
	if err != nil {
		return fmt.Errorf("profile analysis failed: %w", err)
	}
	if githubJSON {
		return printJSON(report)
	}

	observability.NewPrinter(os.Stdout).PrintProfileReport(report)
	return nil
}

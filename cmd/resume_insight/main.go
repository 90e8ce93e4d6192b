// Package main provides the resume_insight command line interface and
// HTTP API server entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_insight",
	Short: "AI-powered resume and GitHub profile analysis",
	Long:  "Resume Insight extracts text from resume files, analyzes skills and experience with Google Gemini, and evaluates GitHub profiles, as one-shot commands or as a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Package prompts provides the LLM prompt templates and renders them.
// Templates are embedded at compile time. Rendering is plain placeholder
// substitution with no conditional logic, so the same input always
// produces byte-identical prompts.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-insight/internal/github"
)

//go:embed templates/*.txt
var templateFiles embed.FS

// Template paths within the embedded filesystem.
const (
	resumeTemplate  = "templates/resume_analysis.txt"
	profileTemplate = "templates/github_analysis.txt"
)

// BuildResumePrompt renders the resume analysis prompt around the
// preprocessed resume text. The prompt pins the exact JSON structure and
// scoring rubric the model must follow.
func BuildResumePrompt(resumeText string) string {
	return Format(mustLoad(resumeTemplate), map[string]string{
		"ResumeText": resumeText,
	})
}

// BuildProfilePrompt renders the GitHub profile analysis prompt around
// the aggregated profile summary, embedded as indented JSON.
func BuildProfilePrompt(summary *github.ProfileSummary) (string, error) {
	payload, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serializing profile summary: %w", err)
	}
	return Format(mustLoad(profileTemplate), map[string]string{
		"ProfileData": string(payload),
	}), nil
}

// Format replaces template placeholders in the form {{.Key}} with values
// from data. This is a simple template system for prompt customization.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		placeholder := fmt.Sprintf("{{.%s}}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}

// mustLoad reads an embedded template. The embed directive guarantees
// presence, so a failure here is a build defect.
func mustLoad(name string) string {
	data, err := templateFiles.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("missing embedded prompt template %s: %v", name, err))
	}
	return strings.TrimSuffix(string(data), "\n")
}

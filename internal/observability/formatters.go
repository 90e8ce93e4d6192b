// Package observability provides formatted output utilities for the CLI
// commands.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-insight/internal/analyzer"
	"github.com/jonathan/resume-insight/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted report output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeReport outputs a human-readable summary of a resume analysis.
func (p *Printer) PrintResumeReport(report *analyzer.ResumeReport) {
	if report == nil {
		return
	}

	analysis := &types.ResumeAnalysis{
		Skills:     report.Skills,
		Experience: report.Experience,
		TechStack:  report.TechStack,
		Summary:    report.Summary,
	}
	p.printBox("RESUME ANALYSIS", resumeBody(analysis))
}

// PrintProfileReport outputs a human-readable summary of a GitHub profile
// analysis.
func (p *Printer) PrintProfileReport(report *analyzer.ProfileReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("User:     %s\n", report.Username))
	if report.UserInfo.Name != "" {
		sb.WriteString(fmt.Sprintf("Name:     %s\n", report.UserInfo.Name))
	}
	sb.WriteString(fmt.Sprintf("Repos:    %d   Stars: %d   Forks: %d\n",
		report.Stats.TotalRepositories, report.Stats.TotalStarsEarned, report.Stats.TotalForks))

	if languages := sortedLanguages(report.Stats.LanguagesUsed); len(languages) > 0 {
		sb.WriteString(fmt.Sprintf("Languages: %s\n", strings.Join(languages, ", ")))
	}

	if len(report.TopRepositories) > 0 {
		sb.WriteString("\nTop repositories:\n")
		count := min(len(report.TopRepositories), maxItemsToShow)
		for i := 0; i < count; i++ {
			repo := report.TopRepositories[i]
			sb.WriteString(fmt.Sprintf("  • %s", repo.Name))
			if repo.Language != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", repo.Language))
			}
			sb.WriteString(fmt.Sprintf(", %d stars\n", repo.Stars))
		}
		if len(report.TopRepositories) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.TopRepositories)-maxItemsToShow))
		}
	}

	if report.Analysis != nil {
		if report.Analysis.OverallExperienceLevel != "" {
			sb.WriteString(fmt.Sprintf("\nLevel: %s\n", report.Analysis.OverallExperienceLevel))
		}
		if report.Analysis.ProfessionalSummary != "" {
			sb.WriteString("\n")
			for _, line := range wrap(report.Analysis.ProfessionalSummary, boxWidth-4) {
				sb.WriteString(line + "\n")
			}
		}
	}

	p.printBox("GITHUB PROFILE ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExtractReport outputs extraction statistics followed by the
// cleaned text itself.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintExtractReport(report *analyzer.ExtractReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:       %s\n", report.Filename))
	sb.WriteString(fmt.Sprintf("Characters: %d\n", report.Statistics.Characters))
	sb.WriteString(fmt.Sprintf("Words:      %d\n", report.Statistics.Words))
	sb.WriteString(fmt.Sprintf("Lines:      %d\n", report.Statistics.Lines))
	sb.WriteString(fmt.Sprintf("Avg word:   %.2f chars", report.Statistics.AvgWordLength))
	p.printBox("EXTRACTED TEXT", sb.String())

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, report.CleanedText)
}

// PrintCombinedReport outputs the resume half and, when present, the
// GitHub half of a combined analysis. A failed GitHub lookup is shown
// as a warning instead of being dropped.
func (p *Printer) PrintCombinedReport(report *analyzer.CombinedReport) {
	if report == nil {
		return
	}

	if report.ResumeAnalysis != nil {
		p.printBox("RESUME ANALYSIS", resumeBody(report.ResumeAnalysis))
	}

	gh := report.GitHubAnalysis
	if gh == nil {
		return
	}

	var sb strings.Builder
	if gh.Status == "error" {
		for i, line := range wrap("⚠ "+gh.Message, boxWidth-4) {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(line)
		}
		p.printBox("GITHUB PROFILE", sb.String())
		return
	}

	sb.WriteString(fmt.Sprintf("User:     %s\n", gh.Username))
	if gh.Stats != nil {
		sb.WriteString(fmt.Sprintf("Repos:    %d   Stars: %d   Forks: %d\n",
			gh.Stats.TotalRepositories, gh.Stats.TotalStarsEarned, gh.Stats.TotalForks))
	}
	if gh.Analysis != nil && gh.Analysis.OverallExperienceLevel != "" {
		sb.WriteString(fmt.Sprintf("Level:    %s\n", gh.Analysis.OverallExperienceLevel))
	}
	p.printBox("GITHUB PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// resumeBody renders the sections shared by the plain and combined
// resume views.
func resumeBody(analysis *types.ResumeAnalysis) string {
	var sb strings.Builder

	if len(analysis.Skills) > 0 {
		sb.WriteString("Skills:\n")
		count := min(len(analysis.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			skill := analysis.Skills[i]
			sb.WriteString(fmt.Sprintf("  %-32s %2d/10\n", skill.Name, skill.Score.Int()))
		}
		if len(analysis.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if analysis.Experience.TotalYears.Present() {
		sb.WriteString(fmt.Sprintf("Experience: %.1f years", analysis.Experience.TotalYears.Float()))
		if analysis.Experience.Confidence != "" {
			sb.WriteString(fmt.Sprintf(" (%s confidence)", analysis.Experience.Confidence))
		}
		sb.WriteString("\n")
	}

	if languages := analysis.TechStack.Languages; len(languages) > 0 {
		sb.WriteString(fmt.Sprintf("Languages:  %s\n", strings.Join(languages, ", ")))
	}

	if analysis.Summary != "" {
		sb.WriteString("\n")
		for _, line := range wrap(analysis.Summary, boxWidth-4) {
			sb.WriteString(line + "\n")
		}
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// sortedLanguages orders language names by repository count descending,
// name ascending as tiebreak.
func sortedLanguages(counts map[string]int) []string {
	languages := make([]string, 0, len(counts))
	for name := range counts {
		languages = append(languages, name)
	}
	sort.Slice(languages, func(i, j int) bool {
		if counts[languages[i]] != counts[languages[j]] {
			return counts[languages[i]] > counts[languages[j]]
		}
		return languages[i] < languages[j]
	})
	return languages
}

// wrap breaks text into lines no longer than width, on word boundaries.
func wrap(text string, width int) []string {
	var lines []string
	var current strings.Builder
	for _, word := range strings.Fields(text) {
		if current.Len() > 0 && current.Len()+1+len(word) > width {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}

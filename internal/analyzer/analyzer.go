// Package analyzer orchestrates extraction, preprocessing, prompting and
// response recovery into complete analysis reports.
package analyzer

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-insight/internal/config"
	"github.com/jonathan/resume-insight/internal/extract"
	"github.com/jonathan/resume-insight/internal/github"
	"github.com/jonathan/resume-insight/internal/logger"
	"github.com/jonathan/resume-insight/internal/parsing"
	"github.com/jonathan/resume-insight/internal/preprocess"
	"github.com/jonathan/resume-insight/internal/prompts"
	"github.com/jonathan/resume-insight/internal/types"
)

// minResumeLength is the minimum raw character count for an analysis.
const minResumeLength = 50

// topRepositories caps the repository list in a profile report.
const topRepositories = 5

// previewLength bounds the text previews in an extract report.
const previewLength = 1000

// Generator produces a raw JSON reply for a prompt.
type Generator interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

// ProfileSource fetches GitHub user and repository data.
type ProfileSource interface {
	UserAndRepositories(ctx context.Context, username string) (*github.User, []github.Repository, error)
}

// Analyzer runs analyses. It holds no mutable state; every method is
// safe for concurrent use.
type Analyzer struct {
	cfg    config.Settings
	model  Generator
	source ProfileSource
}

// New creates an analyzer over a model client and a GitHub source.
func New(cfg config.Settings, model Generator, source ProfileSource) *Analyzer {
	return &Analyzer{cfg: cfg, model: model, source: source}
}

// Ready reports whether a generative model is attached. Extraction
// still works without one; the analysis methods do not.
func (a *Analyzer) Ready() bool {
	return a.model != nil
}

// AnalyzeResume extracts text from the file at path and analyzes it.
func (a *Analyzer) AnalyzeResume(ctx context.Context, path string) (*ResumeReport, error) {
	doc, err := extract.Extract(path)
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Str("format", string(doc.Format)).
		Int("segments", doc.Segments).
		Msg("extracted resume text")

	return a.AnalyzeText(ctx, doc.Text)
}

// AnalyzeText analyzes already-extracted resume text.
func (a *Analyzer) AnalyzeText(ctx context.Context, raw string) (*ResumeReport, error) {
	analysis, err := a.resumeAnalysis(ctx, raw)
	if err != nil {
		return nil, err
	}

	return &ResumeReport{
		Status:        "success",
		Skills:        analysis.Skills,
		Experience:    analysis.Experience,
		TechStack:     analysis.TechStack,
		Summary:       analysis.Summary,
		RawTextLength: utf8.RuneCountInString(raw),
		Message:       fmt.Sprintf("Successfully analyzed resume with %d skills identified", len(analysis.Skills)),
	}, nil
}

// resumeAnalysis runs the resume pipeline up to the validated analysis.
func (a *Analyzer) resumeAnalysis(ctx context.Context, raw string) (*types.ResumeAnalysis, error) {
	trimmed := strings.TrimSpace(raw)
	if length := utf8.RuneCountInString(trimmed); length < minResumeLength {
		return nil, &InsufficientTextError{Length: length}
	}

	normalized, err := preprocess.Normalize(raw, false)
	if err != nil {
		return nil, err
	}

	prompt := prompts.BuildResumePrompt(normalized.Text)
	reply, err := a.model.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, err
	}

	analysis, err := parsing.Recover(reply)
	if err != nil {
		return nil, err
	}

	analysis.Skills = parsing.ClampScores(analysis.Skills)
	sort.SliceStable(analysis.Skills, func(i, j int) bool {
		return analysis.Skills[i].Score.Int() > analysis.Skills[j].Score.Int()
	})

	if err := parsing.ValidateResumeContract(analysis); err != nil {
		return nil, err
	}

	logger.Info().
		Int("skills", len(analysis.Skills)).
		Str("model", a.cfg.Gemini.Model).
		Msg("resume analysis complete")
	return analysis, nil
}

// ExtractText runs extraction and preprocessing without a model call,
// returning bounded previews and text statistics.
func (a *Analyzer) ExtractText(path string, aggressive bool) (*ExtractReport, error) {
	doc, err := extract.Extract(path)
	if err != nil {
		return nil, err
	}

	normalized, err := preprocess.Normalize(doc.Text, aggressive)
	if err != nil {
		return nil, err
	}

	return &ExtractReport{
		Status:      "success",
		RawText:     previewText(doc.Text),
		CleanedText: previewText(normalized.Text),
		Statistics:  normalized.Stats,
	}, nil
}

// AnalyzeProfile fetches, aggregates and analyzes a GitHub profile.
func (a *Analyzer) AnalyzeProfile(ctx context.Context, username string) (*ProfileReport, error) {
	user, repos, err := a.source.UserAndRepositories(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(repos) == 0 {
		return nil, &NoRepositoriesError{Username: username}
	}

	summary := github.Summarize(user, repos)
	logger.Debug().
		Str("username", username).
		Int("repositories", len(repos)).
		Msg("aggregated GitHub data")

	prompt, err := prompts.BuildProfilePrompt(summary)
	if err != nil {
		return nil, err
	}

	reply, err := a.model.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, err
	}

	analysis, err := parsing.RecoverProfile(reply)
	if err != nil {
		return nil, err
	}
	parsing.NormalizeProfile(analysis)

	if err := parsing.ValidateProfileContract(analysis); err != nil {
		return nil, err
	}

	top := summary.Repositories
	if len(top) > topRepositories {
		top = top[:topRepositories]
	}

	logger.Info().
		Str("username", username).
		Str("experience_level", analysis.OverallExperienceLevel).
		Str("model", a.cfg.Gemini.Model).
		Msg("GitHub profile analysis complete")

	return &ProfileReport{
		Status:          "success",
		Username:        username,
		GitHubURL:       user.HTMLURL,
		UserInfo:        summary.User,
		Stats:           summary.Stats,
		TopRepositories: top,
		Analysis:        analysis,
		Message:         fmt.Sprintf("Successfully analyzed GitHub profile for %s", username),
	}, nil
}

// AnalyzeCombined analyzes a resume file and, when a username is given,
// a GitHub profile. A GitHub failure degrades to an error note in the
// report rather than failing the combined request.
func (a *Analyzer) AnalyzeCombined(ctx context.Context, path, githubUsername string) (*CombinedReport, error) {
	doc, err := extract.Extract(path)
	if err != nil {
		return nil, err
	}

	analysis, err := a.resumeAnalysis(ctx, doc.Text)
	if err != nil {
		return nil, err
	}

	report := &CombinedReport{
		Status:         "success",
		ResumeAnalysis: analysis,
	}

	if githubUsername != "" {
		profile, err := a.AnalyzeProfile(ctx, githubUsername)
		if err != nil {
			logger.Warn().
				Err(err).
				Str("username", githubUsername).
				Msg("GitHub side of combined analysis failed")
			report.GitHubAnalysis = &CombinedGitHub{
				Status:  "error",
				Message: fmt.Sprintf("GitHub analysis failed: %v", err),
			}
		} else {
			report.GitHubAnalysis = &CombinedGitHub{
				Username: githubUsername,
				Stats:    &profile.Stats,
				Analysis: profile.Analysis,
			}
		}
	}

	return report, nil
}

// previewText bounds text to previewLength runes, appending an ellipsis
// marker when truncated.
func previewText(text string) string {
	if utf8.RuneCountInString(text) <= previewLength {
		return text
	}
	runes := []rune(text)
	return string(runes[:previewLength]) + "..."
}

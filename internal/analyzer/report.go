package analyzer

import (
	"github.com/jonathan/resume-insight/internal/github"
	"github.com/jonathan/resume-insight/internal/preprocess"
	"github.com/jonathan/resume-insight/internal/types"
)

// ResumeReport is the complete result of a resume analysis.
type ResumeReport struct {
	Status        string           `json:"status"`
	Skills        []types.Skill    `json:"skills"`
	Experience    types.Experience `json:"experience"`
	TechStack     types.TechStack  `json:"tech_stack"`
	Summary       string           `json:"summary"`
	RawTextLength int              `json:"raw_text_length"`
	Message       string           `json:"message"`
}

// ExtractReport is the result of extraction and preprocessing without
// any model call. Text fields are previews bounded to 1000 characters.
type ExtractReport struct {
	Status      string           `json:"status"`
	Filename    string           `json:"filename"`
	RawText     string           `json:"raw_text"`
	CleanedText string           `json:"cleaned_text"`
	Statistics  preprocess.Stats `json:"statistics"`
}

// ProfileReport is the complete result of a GitHub profile analysis.
type ProfileReport struct {
	Status          string                 `json:"status"`
	Username        string                 `json:"username"`
	GitHubURL       string                 `json:"github_url"`
	UserInfo        github.UserSummary     `json:"user_info"`
	Stats           github.Stats           `json:"stats"`
	TopRepositories []github.RepoSummary   `json:"top_repositories"`
	Analysis        *types.ProfileAnalysis `json:"analysis"`
	Message         string                 `json:"message"`
}

// CombinedGitHub is the GitHub half of a combined report. On success it
// carries the stats and analysis; when the GitHub side fails the report
// degrades to an error note instead of failing the whole request.
type CombinedGitHub struct {
	Status   string                 `json:"status,omitempty"`
	Message  string                 `json:"message,omitempty"`
	Username string                 `json:"username,omitempty"`
	Stats    *github.Stats          `json:"stats,omitempty"`
	Analysis *types.ProfileAnalysis `json:"analysis,omitempty"`
}

// CombinedReport pairs a resume analysis with an optional GitHub analysis.
type CombinedReport struct {
	Status         string                `json:"status"`
	ResumeAnalysis *types.ResumeAnalysis `json:"resume_analysis"`
	GitHubAnalysis *CombinedGitHub       `json:"github_analysis,omitempty"`
}

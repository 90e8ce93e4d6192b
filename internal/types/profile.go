// Package types provides type definitions for structured data used throughout the resume-insight system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// DominantTechStack groups the technologies a GitHub profile centers on.
type DominantTechStack struct {
	Languages  []string `json:"languages"`
	Frameworks []string `json:"frameworks"`
	Tools      []string `json:"tools"`
	Domains    []string `json:"domains"`
}

// NotableProject is a repository the model singled out, with complexity
// and impact scored 1-10.
type NotableProject struct {
	Name            string   `json:"name" validate:"required"`
	Description     string   `json:"description,omitempty"`
	ComplexityScore Score    `json:"complexity_score"`
	ImpactScore     Score    `json:"impact_score"`
	Technologies    []string `json:"technologies"`
	Stars           int      `json:"stars"`
}

// ProjectAnalysis summarizes the model's read of a profile's repositories.
type ProjectAnalysis struct {
	TotalAnalyzed   int              `json:"total_analyzed"`
	NotableProjects []NotableProject `json:"notable_projects" validate:"dive"`
	ProjectDomains  []string         `json:"project_domains"`
}

// ActivityAssessment describes contribution habits and community signals.
type ActivityAssessment struct {
	Consistency           string `json:"consistency,omitempty"`
	CommunityEngagement   string `json:"community_engagement,omitempty"`
	CodeQualityIndicators string `json:"code_quality_indicators,omitempty"`
}

// ProfileAnalysis is the structured result of a GitHub profile analysis.
type ProfileAnalysis struct {
	OverallExperienceLevel  string             `json:"overall_experience_level" validate:"omitempty,oneof=Beginner Intermediate Advanced Expert"`
	ExperienceYearsEstimate Years              `json:"experience_years_estimate"`
	SkillsWithScores        map[string]Score   `json:"skills_with_scores"`
	DominantTechStack       DominantTechStack  `json:"dominant_tech_stack"`
	ProjectAnalysis         ProjectAnalysis    `json:"project_analysis"`
	ActivityAssessment      ActivityAssessment `json:"activity_assessment"`
	Strengths               []string           `json:"strengths"`
	AreasForGrowth          []string           `json:"areas_for_growth"`
	ProfessionalSummary     string             `json:"professional_summary"`
}

// Validate validates the ProfileAnalysis using the validator.
func (a *ProfileAnalysis) Validate() error {
	validate := validator.New()
	return validate.Struct(a)
}

// Package types provides type definitions for structured data used throughout the resume-insight system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// Skill is a single technology or competency identified in a resume,
// scored 1-10 by the model.
type Skill struct {
	Name        string `json:"name" validate:"required"`
	Score       Score  `json:"score"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}

// Experience summarizes how much professional experience the resume
// shows and how the estimate was derived.
type Experience struct {
	TotalYears Years  `json:"total_years"`
	Confidence string `json:"confidence,omitempty" validate:"omitempty,oneof=high medium low"`
	Source     string `json:"source,omitempty"`
}

// TechStack groups the technologies found in a resume by kind.
type TechStack struct {
	Languages      []string `json:"languages"`
	Frameworks     []string `json:"frameworks"`
	Tools          []string `json:"tools"`
	Libraries      []string `json:"libraries"`
	Databases      []string `json:"databases"`
	CloudPlatforms []string `json:"cloud_platforms"`
}

// ResumeAnalysis is the structured result of a resume analysis. Absent
// top-level fields are back-filled by the recovery parser, so every
// field is safe to read on a successfully recovered value.
type ResumeAnalysis struct {
	Skills     []Skill    `json:"skills" validate:"dive"`
	Experience Experience `json:"experience"`
	TechStack  TechStack  `json:"tech_stack"`
	Summary    string     `json:"summary"`
}

// Validate validates the ResumeAnalysis using the validator.
func (a *ResumeAnalysis) Validate() error {
	validate := validator.New()
	return validate.Struct(a)
}

package parsing

import (
	"github.com/jonathan/resume-insight/internal/types"
)

// Score bounds for skill and project ratings.
const (
	minScore     = 1
	maxScore     = 10
	defaultScore = 5
)

// ClampScores returns a copy of skills with every score forced into the
// 1-10 range. A skill without a usable score gets the neutral default.
// This is a total function: no input is rejected, which is what lets
// strict contract validation run afterwards without ever tripping on
// numeric drift.
func ClampScores(skills []types.Skill) []types.Skill {
	if skills == nil {
		return nil
	}

	out := make([]types.Skill, len(skills))
	for i, skill := range skills {
		out[i] = skill
		out[i].Score = clampScore(skill.Score)
	}
	return out
}

// NormalizeProfile clamps every scored field of a profile analysis in
// place: the per-skill score map and each notable project's complexity
// and impact scores.
func NormalizeProfile(a *types.ProfileAnalysis) {
	for name, score := range a.SkillsWithScores {
		a.SkillsWithScores[name] = clampScore(score)
	}
	for i := range a.ProjectAnalysis.NotableProjects {
		p := &a.ProjectAnalysis.NotableProjects[i]
		p.ComplexityScore = clampScore(p.ComplexityScore)
		p.ImpactScore = clampScore(p.ImpactScore)
	}
}

func clampScore(s types.Score) types.Score {
	if !s.Present() {
		return types.ScoreOf(defaultScore)
	}

	v := s.Int()
	if v < minScore {
		v = minScore
	}
	if v > maxScore {
		v = maxScore
	}
	return types.ScoreOf(v)
}

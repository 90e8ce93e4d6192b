package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-insight/internal/types"
)

func validResumeAnalysis() *types.ResumeAnalysis {
	return &types.ResumeAnalysis{
		Skills: []types.Skill{
			{Name: "Go", Score: types.ScoreOf(8), Category: "language"},
		},
		Experience: types.Experience{
			TotalYears: types.YearsOf(4),
			Confidence: "medium",
			Source:     "inferred",
		},
		TechStack: types.TechStack{
			Languages:      []string{"Go"},
			Frameworks:     []string{},
			Tools:          []string{},
			Libraries:      []string{},
			Databases:      []string{},
			CloudPlatforms: []string{},
		},
		Summary: "Solid backend experience.",
	}
}

func TestValidateResumeContract(t *testing.T) {
	require.NoError(t, ValidateResumeContract(validResumeAnalysis()))
}

func TestValidateResumeContractAfterNormalization(t *testing.T) {
	// Out-of-range and absent scores must never reach validation; after
	// clamping even a hostile payload satisfies the contract.
	analysis := validResumeAnalysis()
	analysis.Skills = append(analysis.Skills,
		types.Skill{Name: "Rust", Score: types.ScoreOf(99)},
		types.Skill{Name: "SQL"},
	)
	analysis.Skills = ClampScores(analysis.Skills)

	require.NoError(t, ValidateResumeContract(analysis))
}

func TestValidateResumeContractViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.ResumeAnalysis)
		field  string
	}{
		{
			name:   "score above range",
			mutate: func(a *types.ResumeAnalysis) { a.Skills[0].Score = types.ScoreOf(12) },
			field:  "skills.0.score",
		},
		{
			name:   "empty skill name",
			mutate: func(a *types.ResumeAnalysis) { a.Skills[0].Name = "" },
			field:  "skills.0.name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := validResumeAnalysis()
			tt.mutate(analysis)

			err := ValidateResumeContract(analysis)
			require.Error(t, err)

			var cerr *ContractError
			require.ErrorAs(t, err, &cerr)
			require.NotEmpty(t, cerr.Errors)

			fields := make([]string, 0, len(cerr.Errors))
			for _, fe := range cerr.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func validProfileAnalysis() *types.ProfileAnalysis {
	return &types.ProfileAnalysis{
		OverallExperienceLevel:  "Intermediate",
		ExperienceYearsEstimate: types.YearsOf(3),
		SkillsWithScores:        map[string]types.Score{"Go": types.ScoreOf(7)},
		DominantTechStack: types.DominantTechStack{
			Languages:  []string{"Go"},
			Frameworks: []string{},
			Tools:      []string{},
			Domains:    []string{},
		},
		ProjectAnalysis: types.ProjectAnalysis{
			TotalAnalyzed: 3,
			NotableProjects: []types.NotableProject{
				{
					Name:            "resume-insight",
					ComplexityScore: types.ScoreOf(6),
					ImpactScore:     types.ScoreOf(5),
					Technologies:    []string{"Go"},
					Stars:           10,
				},
			},
			ProjectDomains: []string{"tooling"},
		},
		Strengths:           []string{"APIs"},
		AreasForGrowth:      []string{"frontend"},
		ProfessionalSummary: "Steady contributor.",
	}
}

func TestValidateProfileContract(t *testing.T) {
	require.NoError(t, ValidateProfileContract(validProfileAnalysis()))
}

func TestValidateProfileContractViolations(t *testing.T) {
	analysis := validProfileAnalysis()
	analysis.SkillsWithScores["Go"] = types.ScoreOf(42)

	err := ValidateProfileContract(analysis)
	require.Error(t, err)

	var cerr *ContractError
	require.ErrorAs(t, err, &cerr)
	assert.NotEmpty(t, cerr.Errors)
	assert.Contains(t, cerr.Error(), "model response violates the response contract")
}

func TestValidateProfileContractAfterNormalization(t *testing.T) {
	analysis := validProfileAnalysis()
	analysis.SkillsWithScores["Go"] = types.Score{}
	analysis.ProjectAnalysis.NotableProjects[0].ImpactScore = types.ScoreOf(-4)

	NormalizeProfile(analysis)

	require.NoError(t, ValidateProfileContract(analysis))
}

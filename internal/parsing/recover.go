// Package parsing turns raw model replies into validated analysis
// structures. Models wrap JSON in markdown fences and prose often enough
// that parsing is written for maximum recovery: strip what we can,
// back-fill what is missing, and only reject when no JSON payload can be
// found at all.
package parsing

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-insight/internal/types"
)

// previewLimit bounds how much of a bad response gets attached to an
// error.
const previewLimit = 500

// Recover parses a model reply into a ResumeAnalysis. Missing top-level
// fields are back-filled silently; an unparseable body returns
// MalformedResponseError.
func Recover(raw string) (*types.ResumeAnalysis, error) {
	payload := cleanResponse(raw)

	var analysis types.ResumeAnalysis
	if err := json.Unmarshal([]byte(payload), &analysis); err != nil {
		return nil, &MalformedResponseError{Preview: preview(raw), Cause: err}
	}

	fillResumeDefaults(&analysis)
	return &analysis, nil
}

// RecoverProfile parses a model reply into a ProfileAnalysis with the
// same recovery rules as Recover.
func RecoverProfile(raw string) (*types.ProfileAnalysis, error) {
	payload := cleanResponse(raw)

	var analysis types.ProfileAnalysis
	if err := json.Unmarshal([]byte(payload), &analysis); err != nil {
		return nil, &MalformedResponseError{Preview: preview(raw), Cause: err}
	}

	fillProfileDefaults(&analysis)
	return &analysis, nil
}

// cleanResponse peels markdown fences off the reply and slices out the
// outermost JSON object when surrounding prose is present. Without a
// brace pair the trimmed text is returned as-is and the JSON decoder
// gets the final say.
func cleanResponse(raw string) string {
	cleaned := strings.TrimSpace(raw)

	if strings.HasPrefix(cleaned, "```json") {
		cleaned = cleaned[7:]
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = cleaned[3:]
	}
	if strings.HasSuffix(cleaned, "```") {
		cleaned = cleaned[:len(cleaned)-3]
	}
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start != -1 && end != -1 && start < end {
		cleaned = cleaned[start : end+1]
	}

	return cleaned
}

// fillResumeDefaults back-fills absent collections so callers never see
// nil. A missing field is not an error.
func fillResumeDefaults(a *types.ResumeAnalysis) {
	if a.Skills == nil {
		a.Skills = []types.Skill{}
	}
	for _, field := range []*[]string{
		&a.TechStack.Languages,
		&a.TechStack.Frameworks,
		&a.TechStack.Tools,
		&a.TechStack.Libraries,
		&a.TechStack.Databases,
		&a.TechStack.CloudPlatforms,
	} {
		if *field == nil {
			*field = []string{}
		}
	}
}

func fillProfileDefaults(a *types.ProfileAnalysis) {
	if a.SkillsWithScores == nil {
		a.SkillsWithScores = map[string]types.Score{}
	}
	if a.ProjectAnalysis.NotableProjects == nil {
		a.ProjectAnalysis.NotableProjects = []types.NotableProject{}
	}
	for i := range a.ProjectAnalysis.NotableProjects {
		if a.ProjectAnalysis.NotableProjects[i].Technologies == nil {
			a.ProjectAnalysis.NotableProjects[i].Technologies = []string{}
		}
	}
	for _, field := range []*[]string{
		&a.ProjectAnalysis.ProjectDomains,
		&a.DominantTechStack.Languages,
		&a.DominantTechStack.Frameworks,
		&a.DominantTechStack.Tools,
		&a.DominantTechStack.Domains,
		&a.Strengths,
		&a.AreasForGrowth,
	} {
		if *field == nil {
			*field = []string{}
		}
	}
}

// preview returns at most previewLimit bytes of the raw response,
// trimmed and cut on a rune boundary.
func preview(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) <= previewLimit {
		return raw
	}

	cut := raw[:previewLimit]
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}

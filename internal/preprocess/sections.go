package preprocess

import "regexp"

// sectionPatterns spots common resume section headers. Matching is
// deliberately loose; this is a best-effort aid, not a parser.
var sectionPatterns = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"skills", regexp.MustCompile(`(?i)(skills|technical\s+skills|core\s+competencies)`)},
	{"experience", regexp.MustCompile(`(?i)(experience|work\s+experience|employment|professional\s+experience)`)},
	{"education", regexp.MustCompile(`(?i)(education|academic|qualification)`)},
	{"projects", regexp.MustCompile(`(?i)(projects|portfolio)`)},
}

// Sections attempts to identify common resume sections. Each found
// section maps to the text from its header onward, so sections overlap
// when several headers appear. Unmatched sections map to the empty
// string.
func Sections(text string) map[string]string {
	sections := map[string]string{
		"skills":     "",
		"experience": "",
		"education":  "",
		"projects":   "",
		"other":      "",
	}

	for _, sp := range sectionPatterns {
		if loc := sp.pattern.FindStringIndex(text); loc != nil {
			sections[sp.name] = text[loc[0]:]
		}
	}

	return sections
}

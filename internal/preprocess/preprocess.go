// Package preprocess cleans extracted resume text before analysis. The
// pipeline collapses whitespace, strips characters outside a small
// allowlist, and reports basic statistics about the result.
package preprocess

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	spaceRuns      = regexp.MustCompile(` +`)
	blankLineRuns  = regexp.MustCompile(`\n\s*\n+`)
	basicAllowlist = regexp.MustCompile(`[^a-zA-Z0-9\s.,;:()\-+#/]`)
	strictAlnum    = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
)

// EmptyInputError indicates there was no usable text, either before
// cleaning or after cleaning stripped everything away.
type EmptyInputError struct {
	Stage string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("no text to process (%s)", e.Stage)
}

// Stats describes cleaned text. Words are whitespace-separated tokens.
type Stats struct {
	Characters    int     `json:"total_characters"`
	Words         int     `json:"total_words"`
	Lines         int     `json:"total_lines"`
	AvgWordLength float64 `json:"avg_word_length"`
}

// NormalizedText is the output of the cleaning pipeline.
type NormalizedText struct {
	Text  string
	Stats Stats
}

// Normalize runs the full cleaning pipeline. With aggressive false the
// character allowlist keeps basic punctuation (.,;:()-+#/); with
// aggressive true only alphanumerics and whitespace survive. Empty or
// whitespace-only input is rejected before and after cleaning, so a
// result always carries usable text.
func Normalize(raw string, aggressive bool) (*NormalizedText, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, &EmptyInputError{Stage: "before cleaning"}
	}

	text := collapseWhitespace(raw)
	text = stripDisallowed(text, aggressive)
	// Stripping can leave new space runs behind (e.g. "C++ & Go"), so
	// collapse once more to make the whole pipeline a fixed point.
	text = collapseWhitespace(text)
	text = strings.TrimSpace(text)

	if text == "" {
		return nil, &EmptyInputError{Stage: "after cleaning"}
	}

	return &NormalizedText{Text: text, Stats: Statistics(text)}, nil
}

// collapseWhitespace squeezes runs of spaces to one, reduces consecutive
// blank lines to a single blank line, and trims every line. Each step is
// idempotent.
func collapseWhitespace(text string) string {
	text = spaceRuns.ReplaceAllString(text, " ")
	text = blankLineRuns.ReplaceAllString(text, "\n\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}

// stripDisallowed removes characters outside the allowlist.
func stripDisallowed(text string, aggressive bool) string {
	if aggressive {
		return strictAlnum.ReplaceAllString(text, "")
	}
	return basicAllowlist.ReplaceAllString(text, "")
}

// Statistics computes counts over cleaned text. It has no side effects
// and an empty string yields all zeros.
func Statistics(text string) Stats {
	if text == "" {
		return Stats{}
	}

	words := strings.Fields(text)
	lines := strings.Split(text, "\n")

	var totalLen int
	for _, w := range words {
		totalLen += utf8.RuneCountInString(w)
	}

	avg := 0.0
	if len(words) > 0 {
		avg = float64(totalLen) / float64(len(words))
	}

	return Stats{
		Characters:    utf8.RuneCountInString(text),
		Words:         len(words),
		Lines:         len(lines),
		AvgWordLength: avg,
	}
}

package extract

import (
	"fmt"
	"os/exec"
)

// docTool converts legacy Word documents to text. It has to be present
// on PATH; this is the one extraction path that shells out.
const docTool = "antiword"

// extractDOC converts a Word 97-2003 document with antiword. A missing
// binary is reported as MissingDependencyError so the operator knows the
// fix is an install, not a bad file.
func extractDOC(path string) (*Document, error) {
	tool, err := exec.LookPath(docTool)
	if err != nil {
		return nil, &MissingDependencyError{Tool: docTool, Cause: err}
	}

	out, err := exec.Command(tool, path).Output()
	if err != nil {
		return nil, fmt.Errorf("convert doc: %w", err)
	}

	cleaned, lines := joinLines(string(out))
	return &Document{
		Format:   FormatDOC,
		Text:     cleaned,
		Segments: lines,
	}, nil
}

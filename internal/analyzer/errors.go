package analyzer

import "fmt"

// InsufficientTextError indicates the document held too little text to
// produce a meaningful analysis.
type InsufficientTextError struct {
	Length int
}

func (e *InsufficientTextError) Error() string {
	return "Insufficient text content in resume"
}

// NoRepositoriesError indicates the GitHub user exists but has nothing
// public to analyze.
type NoRepositoriesError struct {
	Username string
}

func (e *NoRepositoriesError) Error() string {
	return fmt.Sprintf("No public repositories found for user '%s'", e.Username)
}

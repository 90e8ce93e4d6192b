package github

import "fmt"

// NotFoundError indicates the requested username does not exist.
type NotFoundError struct {
	Username string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("GitHub user '%s' not found", e.Username)
}

// RateLimitError indicates the GitHub API refused the request because
// the rate limit was exhausted.
type RateLimitError struct{}

func (e *RateLimitError) Error() string {
	return "GitHub API rate limit exceeded. Please try again later or provide an access token."
}

// APIError indicates an unexpected non-success status from the GitHub API.
type APIError struct {
	StatusCode int
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("GitHub API error: %d", e.StatusCode)
}

// Error represents a transport-level failure talking to the GitHub API.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("github error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("github error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

package llm

import "fmt"

// UnavailableError indicates the model service rejected or failed the
// request for a reason other than rate limiting or a deadline.
type UnavailableError struct {
	Cause error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("model service unavailable: %v", e.Cause)
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}

// RateLimitError indicates the model service throttled the request.
type RateLimitError struct {
	Cause error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("model service rate limit exceeded: %v", e.Cause)
}

func (e *RateLimitError) Unwrap() error {
	return e.Cause
}

// TimeoutError indicates the request exceeded its deadline before the
// model produced a response.
type TimeoutError struct {
	Cause error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("model request timed out: %v", e.Cause)
}

func (e *TimeoutError) Unwrap() error {
	return e.Cause
}

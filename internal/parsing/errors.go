package parsing

import (
	"fmt"
	"strings"
)

// MalformedResponseError indicates the model's reply could not be parsed
// as JSON even after recovery. Preview carries a bounded slice of the
// raw response for diagnostics; the full payload is never attached.
type MalformedResponseError struct {
	Preview string
	Cause   error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("failed to parse model response as JSON: %v", e.Cause)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ContractError indicates a parsed response violates the response
// contract the prompt pinned down.
type ContractError struct {
	Errors []FieldError
}

func (e *ContractError) Error() string {
	var sb strings.Builder
	sb.WriteString("model response violates the response contract:")
	for _, fe := range e.Errors {
		sb.WriteString(fmt.Sprintf(" %s: %s;", fe.Field, fe.Message))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

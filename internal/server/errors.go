package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-insight/internal/analyzer"
	"github.com/jonathan/resume-insight/internal/extract"
	"github.com/jonathan/resume-insight/internal/github"
	"github.com/jonathan/resume-insight/internal/llm"
	"github.com/jonathan/resume-insight/internal/parsing"
)

// RequestError indicates a request that cannot be accepted, with a
// client-facing message.
type RequestError struct {
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Client mistakes map to 4xx, upstream trouble to 502/504, anything
// unrecognized to 500.
func HTTPStatus(err error) int {
	var (
		badRequest        *RequestError
		tooLarge          *http.MaxBytesError
		unsupportedFormat *extract.UnsupportedFormatError
		encrypted         *extract.EncryptedError
		undecodable       *extract.UndecodableEncodingError
		missingTool       *extract.MissingDependencyError
		insufficientText  *analyzer.InsufficientTextError
		noRepositories    *analyzer.NoRepositoriesError
		userNotFound      *github.NotFoundError
		githubRateLimited *github.RateLimitError
		githubAPI         *github.APIError
		githubTransport   *github.Error
		modelRateLimited  *llm.RateLimitError
		modelUnavailable  *llm.UnavailableError
		modelTimeout      *llm.TimeoutError
		malformedReply    *parsing.MalformedResponseError
		brokenContract    *parsing.ContractError
	)

	switch {
	case errors.As(err, &badRequest),
		errors.As(err, &unsupportedFormat),
		errors.As(err, &encrypted),
		errors.As(err, &undecodable),
		errors.As(err, &insufficientText),
		errors.As(err, &noRepositories):
		return http.StatusBadRequest
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &userNotFound):
		return http.StatusNotFound
	case errors.As(err, &missingTool):
		return http.StatusUnprocessableEntity
	case errors.As(err, &modelTimeout):
		return http.StatusGatewayTimeout
	case errors.As(err, &githubRateLimited),
		errors.As(err, &githubAPI),
		errors.As(err, &githubTransport),
		errors.As(err, &modelRateLimited),
		errors.As(err, &modelUnavailable),
		errors.As(err, &malformedReply),
		errors.As(err, &brokenContract):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

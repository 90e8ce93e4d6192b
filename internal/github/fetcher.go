// Package github fetches and aggregates public GitHub profile data.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultBaseURL is the public GitHub API endpoint.
const DefaultBaseURL = "https://api.github.com"

// DefaultTimeout is the default timeout for a single API request.
const DefaultTimeout = 15 * time.Second

// Options configures the fetcher.
type Options struct {
	// Token is an optional personal access token for higher rate limits.
	Token   string
	Timeout time.Duration
	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL string
}

// DefaultOptions returns sensible defaults for an unauthenticated fetcher.
func DefaultOptions() *Options {
	return &Options{
		Timeout: DefaultTimeout,
		BaseURL: DefaultBaseURL,
	}
}

// Fetcher retrieves user and repository data from the GitHub API.
type Fetcher struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewFetcher creates a fetcher. A nil opts uses DefaultOptions.
func NewFetcher(opts *Options) *Fetcher {
	if opts == nil {
		opts = DefaultOptions()
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Fetcher{
		baseURL: baseURL,
		token:   opts.Token,
		client:  &http.Client{Timeout: timeout},
	}
}

// User fetches the profile for a username.
func (f *Fetcher) User(ctx context.Context, username string) (*User, error) {
	url := fmt.Sprintf("%s/users/%s", f.baseURL, username)
	body, status, err := f.get(ctx, url)
	if err != nil {
		return nil, err
	}

	switch {
	case status == http.StatusNotFound:
		return nil, &NotFoundError{Username: username}
	case status == http.StatusForbidden:
		return nil, &RateLimitError{}
	case status != http.StatusOK:
		return nil, &APIError{StatusCode: status, URL: url}
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, &Error{URL: url, Message: "failed to decode user payload", Cause: err}
	}
	return &user, nil
}

// Repositories fetches up to 100 public repositories, most recently
// updated first.
func (f *Fetcher) Repositories(ctx context.Context, username string) ([]Repository, error) {
	url := fmt.Sprintf("%s/users/%s/repos?per_page=100&sort=updated", f.baseURL, username)
	body, status, err := f.get(ctx, url)
	if err != nil {
		return nil, err
	}

	switch {
	case status == http.StatusForbidden:
		return nil, &RateLimitError{}
	case status != http.StatusOK:
		return nil, &APIError{StatusCode: status, URL: url}
	}

	var repos []Repository
	if err := json.Unmarshal(body, &repos); err != nil {
		return nil, &Error{URL: url, Message: "failed to decode repository payload", Cause: err}
	}
	return repos, nil
}

// Languages fetches the bytes-per-language breakdown for one repository.
// Failures of any kind degrade to an empty map; language detail is
// optional enrichment, never a reason to fail an analysis.
func (f *Fetcher) Languages(ctx context.Context, username, repo string) map[string]int {
	url := fmt.Sprintf("%s/repos/%s/%s/languages", f.baseURL, username, repo)
	body, status, err := f.get(ctx, url)
	if err != nil || status != http.StatusOK {
		return map[string]int{}
	}

	languages := map[string]int{}
	if err := json.Unmarshal(body, &languages); err != nil {
		return map[string]int{}
	}
	return languages
}

// UserAndRepositories fetches the profile and repository list concurrently.
func (f *Fetcher) UserAndRepositories(ctx context.Context, username string) (*User, []Repository, error) {
	var (
		user  *User
		repos []Repository
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := f.User(ctx, username)
		if err != nil {
			return err
		}
		user = u
		return nil
	})
	g.Go(func() error {
		r, err := f.Repositories(ctx, username)
		if err != nil {
			return err
		}
		repos = r
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return user, repos, nil
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, &Error{URL: url, Message: "failed to create request", Cause: err}
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	if f.token != "" {
		req.Header.Set("Authorization", "token "+f.token)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, 0, &Error{URL: url, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, &Error{URL: url, Message: "failed to read response body", Cause: err}
	}
	return body, resp.StatusCode, nil
}

// Package llm provides the Gemini client used for structured analysis.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Client is an abstraction over LLM providers.
type Client interface {
	// GenerateJSON sends a prompt and returns the model's raw text reply.
	// The model is asked for a JSON MIME type but the reply is returned
	// untouched; recovery parsing happens downstream.
	GenerateJSON(ctx context.Context, prompt string) (string, error)
	// Close releases any resources held by the client.
	Close() error
}

// Options configures a Gemini client. Zero fields fall back to the
// corresponding DefaultOptions values.
type Options struct {
	Model           string
	Temperature     float32
	MaxOutputTokens int32
	Timeout         time.Duration
}

// DefaultOptions returns the settings used when a field is left zero.
func DefaultOptions() Options {
	return Options{
		Model:           "gemini-2.0-flash",
		Temperature:     0.7,
		MaxOutputTokens: 2048,
		Timeout:         60 * time.Second,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Model == "" {
		o.Model = def.Model
	}
	if o.Temperature == 0 {
		o.Temperature = def.Temperature
	}
	if o.MaxOutputTokens == 0 {
		o.MaxOutputTokens = def.MaxOutputTokens
	}
	if o.Timeout == 0 {
		o.Timeout = def.Timeout
	}
	return o
}

// GeminiClient implements Client for Google Gemini.
type GeminiClient struct {
	client *genai.Client
	opts   Options
}

// NewGeminiClient creates a new Gemini client.
func NewGeminiClient(ctx context.Context, apiKey string, opts Options) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		opts:   opts.withDefaults(),
	}, nil
}

// GenerateJSON generates a JSON reply for the prompt.
func (c *GeminiClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.opts.Model)
	model.SetTemperature(c.opts.Temperature)
	model.SetMaxOutputTokens(c.opts.MaxOutputTokens)
	model.ResponseMIMEType = "application/json"

	if c.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.Timeout)
		defer cancel()
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", classifyGenerateError(err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return "", &UnavailableError{Cause: err}
	}
	return text, nil
}

// Model returns the configured model name.
func (c *GeminiClient) Model() string {
	return c.opts.Model
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// classifyGenerateError maps transport failures onto the package error
// types so HTTP handlers can choose a status without inspecting the SDK.
func classifyGenerateError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Cause: err}
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == http.StatusTooManyRequests {
		return &RateLimitError{Cause: err}
	}
	return &UnavailableError{Cause: err}
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-insight/internal/analyzer"
	"github.com/jonathan/resume-insight/internal/config"
	"github.com/jonathan/resume-insight/internal/extract"
	"github.com/jonathan/resume-insight/internal/github"
	"github.com/jonathan/resume-insight/internal/llm"
	"github.com/jonathan/resume-insight/internal/server/ratelimit"
)

type fakeGenerator struct {
	reply string
	err   error
}

func (f *fakeGenerator) GenerateJSON(context.Context, string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

// scriptedGenerator returns one reply per call, for the combined
// endpoint's two model round trips.
type scriptedGenerator struct {
	replies []string
	calls   int
}

func (f *scriptedGenerator) GenerateJSON(context.Context, string) (string, error) {
	if f.calls >= len(f.replies) {
		return "", errors.New("unexpected model call")
	}
	reply := f.replies[f.calls]
	f.calls++
	return reply, nil
}

type fakeSource struct {
	user  *github.User
	repos []github.Repository
	err   error
}

func (f *fakeSource) UserAndRepositories(context.Context, string) (*github.User, []github.Repository, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.user, f.repos, nil
}

const resumeText = `John Doe, Senior Software Engineer with eight years of experience
building backend services in Go and Python. Postgres, Docker, AWS.`

const resumeReply = `{
	"skills": [
		{"name": "Go", "score": 9, "category": "Language"},
		{"name": "Python", "score": 7, "category": "Language"}
	],
	"experience": {"total_years": 8, "confidence": "high", "source": "stated"},
	"tech_stack": {
		"languages": ["Go", "Python"],
		"frameworks": [],
		"tools": ["Docker"],
		"libraries": [],
		"databases": ["PostgreSQL"],
		"cloud_platforms": ["AWS"]
	},
	"summary": "Seasoned backend engineer."
}`

const profileReply = `{
	"overall_experience_level": "Advanced",
	"experience_years_estimate": 6,
	"skills_with_scores": {"Go": 9},
	"dominant_tech_stack": {"languages": ["Go"], "frameworks": [], "tools": [], "domains": ["backend"]},
	"project_analysis": {
		"total_analyzed": 1,
		"notable_projects": [],
		"project_domains": ["tooling"]
	},
	"activity_assessment": {"consistency": "High", "community_engagement": "Medium", "code_quality_indicators": "solid"},
	"strengths": ["systems"],
	"areas_for_growth": ["frontend"],
	"professional_summary": "Backend generalist."
}`

func githubUser() *github.User {
	return &github.User{
		Login:       "octocat",
		Name:        "The Octocat",
		CreatedAt:   "2020-03-10T12:00:00Z",
		PublicRepos: 2,
		HTMLURL:     "https://github.com/octocat",
	}
}

func githubRepos() []github.Repository {
	return []github.Repository{
		{Name: "hello-world", Language: "Go", StargazersCount: 12, HTMLURL: "https://github.com/octocat/hello-world"},
		{Name: "spoon-knife", Language: "Ruby", StargazersCount: 3, HTMLURL: "https://github.com/octocat/spoon-knife"},
	}
}

func testSettings(t *testing.T) config.Settings {
	t.Helper()
	cfg := config.Settings{}
	cfg.Gemini.APIKey = "test-key"
	cfg.Gemini.Model = "gemini-2.0-flash"
	cfg.Upload.Dir = t.TempDir()
	cfg.Upload.MaxBytes = 1 << 20
	cfg.Upload.AllowedExtensions = extract.Extensions()
	return cfg
}

// newTestServer builds a server around a real analyzer with fake model
// and GitHub collaborators. Rate limiting is disabled so handler tests
// exercise handlers alone.
func newTestServer(t *testing.T, gen analyzer.Generator, source analyzer.ProfileSource) *Server {
	t.Helper()
	cfg := testSettings(t)
	return &Server{
		cfg:         cfg,
		analyzer:    analyzer.New(cfg, gen, source),
		rateLimiter: ratelimit.NewLimiter(&ratelimit.Config{Enabled: false}),
	}
}

// multipartUpload builds a multipart body with a "file" part and any
// extra form fields.
func multipartUpload(t *testing.T, filename, content string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = io.WriteString(fw, content)
	require.NoError(t, err)

	for key, value := range fields {
		require.NoError(t, mw.WriteField(key, value))
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHandleRoot(t *testing.T) {
	s := newTestServer(t, &fakeGenerator{reply: resumeReply}, &fakeSource{})

	w := httptest.NewRecorder()
	s.handleRoot(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Resume Insight", body["service"])
	assert.Equal(t, "online", body["status"])
	assert.Equal(t, Version, body["version"])
	assert.Equal(t, true, body["gemini_configured"])
	assert.Contains(t, body["features"], "Resume Analysis")
	assert.Contains(t, body["features"], "GitHub Profile Analysis")
}

func TestHandleRootDegraded(t *testing.T) {
	s := newTestServer(t, nil, &fakeSource{})

	w := httptest.NewRecorder()
	s.handleRoot(w, httptest.NewRequest(http.MethodGet, "/", nil))

	body := decodeBody(t, w)
	assert.Equal(t, false, body["gemini_configured"])
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t, &fakeGenerator{reply: resumeReply}, &fakeSource{})

	w := httptest.NewRecorder()
	s.handleHealth(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "configured", body["gemini_api"])
	assert.Equal(t, true, body["upload_dir"])
	assert.Contains(t, body["supported_formats"], ".pdf")
}

func TestHandleHealthNoKey(t *testing.T) {
	s := newTestServer(t, nil, &fakeSource{})
	s.cfg.Gemini.APIKey = ""

	w := httptest.NewRecorder()
	s.handleHealth(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	body := decodeBody(t, w)
	assert.Equal(t, "not configured", body["gemini_api"])
}

func TestHandleAnalyze(t *testing.T) {
	s := newTestServer(t, &fakeGenerator{reply: resumeReply}, &fakeSource{})

	buf, contentType := multipartUpload(t, "resume.txt", resumeText, nil)
	req := httptest.NewRequest(http.MethodPost, "/analyze", buf)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	s.handleAnalyze(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Successfully analyzed resume with 2 skills identified", body["message"])

	skills, ok := body["skills"].([]any)
	require.True(t, ok)
	require.Len(t, skills, 2)
	first := skills[0].(map[string]any)
	assert.Equal(t, "Go", first["name"])
	assert.Equal(t, float64(9), first["score"])

	assert.Contains(t, body, "experience")
	assert.Contains(t, body, "tech_stack")
	assert.Contains(t, body, "raw_text_length")
	assert.NotContains(t, body, "statistics")
}

func TestHandleAnalyzeCleansUpUpload(t *testing.T) {
	s := newTestServer(t, &fakeGenerator{reply: resumeReply}, &fakeSource{})

	buf, contentType := multipartUpload(t, "resume.txt", resumeText, nil)
	req := httptest.NewRequest(http.MethodPost, "/analyze", buf)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	s.handleAnalyze(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	entries, err := os.ReadDir(s.cfg.Upload.Dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "uploaded file should be removed")
}

func TestHandleAnalyzeNotConfigured(t *testing.T) {
	s := newTestServer(t, nil, &fakeSource{})

	buf, contentType := multipartUpload(t, "resume.txt", resumeText, nil)
	req := httptest.NewRequest(http.MethodPost, "/analyze", buf)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	s.handleAnalyze(w, req)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Gemini AI service not configured. Please set GOOGLE_API_KEY.", body["message"])
}

func TestHandleAnalyzeMissingFile(t *testing.T) {
	s := newTestServer(t, &fakeGenerator{reply: resumeReply}, &fakeSource{})

	req := httptest.NewRequest(http.MethodPost, "/analyze", nil)
	w := httptest.NewRecorder()

	s.handleAnalyze(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "No file provided", body["message"])
}

func TestHandleAnalyzeRejectsExtension(t *testing.T) {
	s := newTestServer(t, &fakeGenerator{reply: resumeReply}, &fakeSource{})

	buf, contentType := multipartUpload(t, "resume.odt", resumeText, nil)
	req := httptest.NewRequest(http.MethodPost, "/analyze", buf)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	s.handleAnalyze(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Contains(t, body["message"], "Invalid file format. Allowed:")
}

func TestHandleAnalyzeRejectsOversizedUpload(t *testing.T) {
	s := newTestServer(t, &fakeGenerator{reply: resumeReply}, &fakeSource{})
	s.cfg.Upload.MaxBytes = 64

	buf, contentType := multipartUpload(t, "resume.txt", resumeText, nil)
	req := httptest.NewRequest(http.MethodPost, "/analyze", buf)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	s.handleAnalyze(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestHandleAnalyzeInsufficientText(t *testing.T) {
	s := newTestServer(t, &fakeGenerator{reply: resumeReply}, &fakeSource{})

	buf, contentType := multipartUpload(t, "resume.txt", "too short", nil)
	req := httptest.NewRequest(http.MethodPost, "/analyze", buf)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	s.handleAnalyze(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Insufficient text content in resume", body["message"])
}

func TestHandleAnalyzeModelFailure(t *testing.T) {
	s := newTestServer(t, &fakeGenerator{err: &llm.UnavailableError{Cause: errors.New("503")}}, &fakeSource{})

	buf, contentType := multipartUpload(t, "resume.txt", resumeText, nil)
	req := httptest.NewRequest(http.MethodPost, "/analyze", buf)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	s.handleAnalyze(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestHandleExtractText(t *testing.T) {
	// Extraction does not need a model; nil keeps the endpoint honest in
	// degraded mode.
	s := newTestServer(t, nil, &fakeSource{})

	buf, contentType := multipartUpload(t, "resume.txt", resumeText, nil)
	req := httptest.NewRequest(http.MethodPost, "/extract-text", buf)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	s.handleExtractText(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "resume.txt", body["filename"])
	assert.Contains(t, body["raw_text"], "John Doe")
	assert.Contains(t, body["cleaned_text"], "John Doe")

	stats, ok := body["statistics"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, stats, "total_words")
	assert.Contains(t, stats, "total_characters")
}

func TestHandleExtractTextStreamRejectsNonPDF(t *testing.T) {
	s := newTestServer(t, nil, &fakeSource{})

	buf, contentType := multipartUpload(t, "resume.txt", resumeText, nil)
	req := httptest.NewRequest(http.MethodPost, "/extract-text/stream", buf)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	s.handleExtractTextStream(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Streaming extraction supports PDF files only", body["message"])
}

func TestHandleAnalyzeGitHub(t *testing.T) {
	source := &fakeSource{user: githubUser(), repos: githubRepos()}
	s := newTestServer(t, &fakeGenerator{reply: profileReply}, source)

	req := httptest.NewRequest(http.MethodGet, "/analyze/github/octocat", nil)
	req.SetPathValue("username", "octocat")
	w := httptest.NewRecorder()

	s.handleAnalyzeGitHub(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "octocat", body["username"])
	assert.Equal(t, "https://github.com/octocat", body["github_url"])
	assert.Equal(t, "Successfully analyzed GitHub profile for octocat", body["message"])
	assert.Contains(t, body, "user_info")
	assert.Contains(t, body, "stats")
	assert.Contains(t, body, "top_repositories")

	analysis, ok := body["analysis"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Advanced", analysis["overall_experience_level"])
}

func TestHandleAnalyzeGitHubUserNotFound(t *testing.T) {
	source := &fakeSource{err: &github.NotFoundError{Username: "ghost"}}
	s := newTestServer(t, &fakeGenerator{reply: profileReply}, source)

	req := httptest.NewRequest(http.MethodGet, "/analyze/github/ghost", nil)
	req.SetPathValue("username", "ghost")
	w := httptest.NewRecorder()

	s.handleAnalyzeGitHub(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "GitHub user 'ghost' not found", body["message"])
}

func TestHandleAnalyzeGitHubNoRepositories(t *testing.T) {
	source := &fakeSource{user: githubUser()}
	s := newTestServer(t, &fakeGenerator{reply: profileReply}, source)

	req := httptest.NewRequest(http.MethodGet, "/analyze/github/octocat", nil)
	req.SetPathValue("username", "octocat")
	w := httptest.NewRecorder()

	s.handleAnalyzeGitHub(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "No public repositories found for user 'octocat'", body["message"])
}

func TestHandleAnalyzeCombined(t *testing.T) {
	gen := &scriptedGenerator{replies: []string{resumeReply, profileReply}}
	source := &fakeSource{user: githubUser(), repos: githubRepos()}
	s := newTestServer(t, gen, source)

	buf, contentType := multipartUpload(t, "resume.txt", resumeText, map[string]string{
		"github_username": "octocat",
	})
	req := httptest.NewRequest(http.MethodPost, "/analyze/combined", buf)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	s.handleAnalyzeCombined(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, "success", body["status"])

	resume, ok := body["resume_analysis"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, resume, "skills")
	assert.Contains(t, resume, "tech_stack")

	githubSide, ok := body["github_analysis"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "octocat", githubSide["username"])
	assert.Contains(t, githubSide, "stats")
	assert.Contains(t, githubSide, "analysis")
	assert.Equal(t, 2, gen.calls)
}

func TestHandleAnalyzeCombinedWithoutUsername(t *testing.T) {
	s := newTestServer(t, &fakeGenerator{reply: resumeReply}, &fakeSource{})

	buf, contentType := multipartUpload(t, "resume.txt", resumeText, nil)
	req := httptest.NewRequest(http.MethodPost, "/analyze/combined", buf)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	s.handleAnalyzeCombined(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.NotContains(t, body, "github_analysis")
}

func TestHandleAnalyzeCombinedGitHubFailureDegrades(t *testing.T) {
	source := &fakeSource{err: &github.RateLimitError{}}
	s := newTestServer(t, &fakeGenerator{reply: resumeReply}, source)

	buf, contentType := multipartUpload(t, "resume.txt", resumeText, map[string]string{
		"github_username": "octocat",
	})
	req := httptest.NewRequest(http.MethodPost, "/analyze/combined", buf)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	s.handleAnalyzeCombined(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	githubSide, ok := body["github_analysis"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "error", githubSide["status"])
	assert.Contains(t, githubSide["message"], "GitHub analysis failed")
}

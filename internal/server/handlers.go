package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/resume-insight/internal/extract"
	"github.com/jonathan/resume-insight/internal/logger"
)

const notConfiguredMsg = "Gemini AI service not configured. Please set GOOGLE_API_KEY."

// uploadedFile is a request-scoped copy of a multipart upload.
type uploadedFile struct {
	Name string // client-supplied filename, path-stripped
	Path string // server-side location under the upload directory
}

// saveUpload copies the "file" multipart field into the upload
// directory under a unique name, enforcing the extension allowlist and
// the size limit. The caller must invoke cleanup on every path.
func (s *Server) saveUpload(w http.ResponseWriter, r *http.Request) (*uploadedFile, func(), error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Upload.MaxBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, nil, err
		}
		return nil, nil, &RequestError{Message: "No file provided"}
	}
	defer file.Close()

	name := filepath.Base(header.Filename)
	ext := strings.ToLower(filepath.Ext(name))
	if !s.cfg.Upload.AllowsExtension(ext) {
		return nil, nil, &RequestError{Message: fmt.Sprintf(
			"Invalid file format. Allowed: %s", strings.Join(s.cfg.Upload.AllowedExtensions, ", "))}
	}

	path := filepath.Join(s.cfg.Upload.Dir, uuid.New().String()+"_"+name)
	dst, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to save file: %w", err)
	}

	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		os.Remove(path)
		return nil, nil, fmt.Errorf("failed to save file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return nil, nil, fmt.Errorf("failed to save file: %w", err)
	}

	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			logger.Warn().Err(err).Str("path", path).Msg("failed to remove uploaded file")
		}
	}
	return &uploadedFile{Name: name, Path: path}, cleanup, nil
}

// handleRoot reports service identity and feature availability.
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"service":           "Resume Insight",
		"status":            "online",
		"version":           Version,
		"features":          []string{"Resume Analysis", "GitHub Profile Analysis"},
		"gemini_configured": s.analyzer.Ready(),
	})
}

// handleHealth returns a detailed health check.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	geminiAPI := "not configured"
	if s.cfg.Gemini.APIKey != "" {
		geminiAPI = "configured"
	}
	_, statErr := os.Stat(s.cfg.Upload.Dir)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":            "healthy",
		"gemini_api":        geminiAPI,
		"upload_dir":        statErr == nil,
		"supported_formats": s.cfg.Upload.AllowedExtensions,
	})
}

// handleAnalyze runs the full analysis on an uploaded resume.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if !s.analyzer.Ready() {
		s.errorResponse(w, http.StatusServiceUnavailable, notConfiguredMsg)
		return
	}

	upload, cleanup, err := s.saveUpload(w, r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	defer cleanup()

	report, err := s.analyzer.AnalyzeResume(r.Context(), upload.Path)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleExtractText extracts and preprocesses text without analyzing
// it, for debugging and previews.
func (s *Server) handleExtractText(w http.ResponseWriter, r *http.Request) {
	upload, cleanup, err := s.saveUpload(w, r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	defer cleanup()

	report, err := s.analyzer.ExtractText(upload.Path, false)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	report.Filename = upload.Name

	s.jsonResponse(w, http.StatusOK, report)
}

// handleExtractTextStream streams PDF extraction page by page as
// server-sent events.
func (s *Server) handleExtractTextStream(w http.ResponseWriter, r *http.Request) {
	upload, cleanup, err := s.saveUpload(w, r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	defer cleanup()

	if strings.ToLower(filepath.Ext(upload.Name)) != ".pdf" {
		s.errorResponse(w, http.StatusBadRequest, "Streaming extraction supports PDF files only")
		return
	}

	scanner, err := extract.NewPageScanner(upload.Path)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	defer scanner.Close()

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	for scanner.Scan() {
		event := PageEvent{
			Page:  scanner.Page(),
			Pages: scanner.Pages(),
			Text:  scanner.Text(),
		}
		if err := sse.WriteEvent("page", event); err != nil {
			logger.Error().Err(err).Msg("writing SSE page event")
			return
		}
	}
	if err := scanner.Err(); err != nil {
		sse.WriteError(err.Error())
		return
	}

	sse.WriteComplete(upload.Name, scanner.Pages())
}

// handleAnalyzeGitHub analyzes a GitHub profile by username.
func (s *Server) handleAnalyzeGitHub(w http.ResponseWriter, r *http.Request) {
	if !s.analyzer.Ready() {
		s.errorResponse(w, http.StatusServiceUnavailable, notConfiguredMsg)
		return
	}

	username := r.PathValue("username")
	if username == "" {
		s.errorResponse(w, http.StatusBadRequest, "GitHub username is required")
		return
	}

	report, err := s.analyzer.AnalyzeProfile(r.Context(), username)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleAnalyzeCombined analyzes a resume and, when the optional
// github_username field is set, the matching GitHub profile.
func (s *Server) handleAnalyzeCombined(w http.ResponseWriter, r *http.Request) {
	if !s.analyzer.Ready() {
		s.errorResponse(w, http.StatusServiceUnavailable, "Gemini AI service not configured")
		return
	}

	upload, cleanup, err := s.saveUpload(w, r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	defer cleanup()

	username := r.FormValue("github_username")
	report, err := s.analyzer.AnalyzeCombined(r.Context(), upload.Path, username)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

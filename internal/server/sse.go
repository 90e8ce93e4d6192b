package server

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// PageEvent is the payload of one streamed extraction page.
type PageEvent struct {
	Page  int    `json:"page"`
	Pages int    `json:"pages"`
	Text  string `json:"text"`
}

// SSEWriter helps write Server-Sent Events.
type SSEWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// NewSSEWriter creates a new SSE writer.
func NewSSEWriter(w http.ResponseWriter) (*SSEWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	return &SSEWriter{w: w, flusher: flusher}, nil
}

// WriteEvent sends an SSE event.
func (s *SSEWriter) WriteEvent(event string, data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(s.w, "event: %s\n", event); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", jsonData); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// WriteError sends an error event.
func (s *SSEWriter) WriteError(message string) {
	s.WriteEvent("error", map[string]string{ //nolint:errcheck
		"status":  "error",
		"message": message,
	})
}

// WriteComplete sends a completion event.
func (s *SSEWriter) WriteComplete(filename string, pages int) {
	s.WriteEvent("complete", map[string]any{ //nolint:errcheck
		"status":   "success",
		"filename": filename,
		"pages":    pages,
	})
}

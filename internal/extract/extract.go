// Package extract reads text out of resume documents. It dispatches on
// file extension and supports PDF, DOCX, legacy DOC, and plain text.
package extract

import (
	"path/filepath"
	"strings"
)

// Format identifies the source document format.
type Format string

// Supported document formats.
const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatDOC  Format = "doc"
	FormatTXT  Format = "txt"
)

// Document is the result of a text extraction. It is request-scoped and
// never persisted.
type Document struct {
	// Format is the detected source format.
	Format Format
	// Text is the extracted text, cleaned of empty lines and joined
	// with single newlines.
	Text string
	// Segments counts the source units that contributed text: pages
	// for PDF, paragraphs and table cells for DOCX, lines otherwise.
	Segments int
}

// Extensions lists the file extensions Extract accepts, in display order.
func Extensions() []string {
	return []string{".pdf", ".docx", ".doc", ".txt"}
}

// Supported reports whether the file's extension is extractable.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf", ".docx", ".doc", ".txt":
		return true
	}
	return false
}

// Extract reads the file at path and returns its text content. The
// format is chosen by lower-cased file extension; an unknown extension
// returns UnsupportedFormatError.
func Extract(path string) (*Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractPDF(path)
	case ".docx":
		return extractDOCX(path)
	case ".doc":
		return extractDOC(path)
	case ".txt":
		return extractTXT(path)
	default:
		return nil, &UnsupportedFormatError{Extension: strings.ToLower(filepath.Ext(path))}
	}
}

// joinLines strips each line, drops the empty ones, and rejoins with
// single newlines.
func joinLines(text string) (string, int) {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n"), len(kept)
}

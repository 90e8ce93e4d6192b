package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// scannedPDFNotice is returned as the document text when a PDF contains
// no extractable text on any page, which usually means it is scanned or
// image-only. Returning a marker instead of an empty string keeps the
// failure visible downstream.
const scannedPDFNotice = "[Warning: This appears to be a scanned or image-only PDF. " +
	"No text could be extracted. Please provide a text-based PDF or use OCR.]"

// extractPDF reads every page of a PDF. Opening already attempts an
// empty user password, so only genuinely protected files surface as
// EncryptedError.
func extractPDF(path string) (*Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		if errors.Is(err, pdf.ErrInvalidPassword) {
			return nil, &EncryptedError{Path: path, Cause: err}
		}
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	numPages := r.NumPage()
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		text = strings.TrimSpace(text)
		if text != "" {
			pages = append(pages, text)
		}
	}

	if len(pages) == 0 {
		pages = append(pages, scannedPDFNotice)
	}

	return &Document{
		Format:   FormatPDF,
		Text:     strings.Join(pages, "\n"),
		Segments: numPages,
	}, nil
}

package extract

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PageScanner iterates over the pages of a PDF one at a time, in the
// style of bufio.Scanner. It is forward-only and cannot be restarted;
// open a new scanner to read the document again. Pages without
// extractable text yield a placeholder marker rather than an empty
// string. Close must be called to release the file handle.
type PageScanner struct {
	f     *os.File
	r     *pdf.Reader
	page  int
	total int
	text  string
	err   error
}

// NewPageScanner opens a PDF for page-by-page extraction. An empty user
// password is attempted automatically; a file that stays locked returns
// EncryptedError.
func NewPageScanner(path string) (*PageScanner, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		if errors.Is(err, pdf.ErrInvalidPassword) {
			return nil, &EncryptedError{Path: path, Cause: err}
		}
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	return &PageScanner{f: f, r: r, total: r.NumPage()}, nil
}

// Scan advances to the next page. It returns false when no pages remain
// or a page failed to read; Err distinguishes the two.
func (s *PageScanner) Scan() bool {
	if s.err != nil || s.page >= s.total {
		return false
	}
	s.page++

	page := s.r.Page(s.page)
	if page.V.IsNull() {
		s.text = fmt.Sprintf("[Page %d: No extractable text]", s.page)
		return true
	}

	text, err := page.GetPlainText(nil)
	if err != nil {
		s.err = fmt.Errorf("extract page %d: %w", s.page, err)
		return false
	}

	text = strings.TrimSpace(text)
	if text == "" {
		text = fmt.Sprintf("[Page %d: No extractable text]", s.page)
	}
	s.text = text
	return true
}

// Text returns the text of the page read by the last call to Scan.
func (s *PageScanner) Text() string {
	return s.text
}

// Page returns the 1-based number of the page read by the last call to
// Scan.
func (s *PageScanner) Page() int {
	return s.page
}

// Pages returns the total page count of the document.
func (s *PageScanner) Pages() int {
	return s.total
}

// Err returns the first error encountered while scanning, if any.
func (s *PageScanner) Err() error {
	return s.err
}

// Close releases the underlying file handle.
func (s *PageScanner) Close() error {
	return s.f.Close()
}

package extract

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPageScannerMissingFile(t *testing.T) {
	_, err := NewPageScanner(filepath.Join(t.TempDir(), "missing.pdf"))
	require.Error(t, err)
}

func TestNewPageScannerNotPDF(t *testing.T) {
	path := writeTempFile(t, "fake.pdf", []byte("plain text pretending to be a pdf"))

	_, err := NewPageScanner(path)
	require.Error(t, err)
}

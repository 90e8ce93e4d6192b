package extract

import (
	"fmt"
	"strings"
)

// UnsupportedFormatError indicates the file extension is not one of the
// formats the extractor knows how to read.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %s", e.Extension)
}

// EncryptedError indicates a PDF is password-protected and could not be
// opened with an empty password.
type EncryptedError struct {
	Path  string
	Cause error
}

func (e *EncryptedError) Error() string {
	return fmt.Sprintf("%s is password-protected and cannot be decrypted", e.Path)
}

func (e *EncryptedError) Unwrap() error {
	return e.Cause
}

// MissingDependencyError indicates an external conversion tool is not
// installed. The operator can recover by installing it.
type MissingDependencyError struct {
	Tool  string
	Cause error
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("legacy .doc extraction requires %q on PATH", e.Tool)
}

func (e *MissingDependencyError) Unwrap() error {
	return e.Cause
}

// UndecodableEncodingError indicates none of the attempted text encodings
// produced usable text.
type UndecodableEncodingError struct {
	Path      string
	Encodings []string
}

func (e *UndecodableEncodingError) Error() string {
	return fmt.Sprintf("unable to decode file with common encodings: %s", strings.Join(e.Encodings, ", "))
}

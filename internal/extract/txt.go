package extract

import (
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// txtEncodings is the fallback chain for plain text files, tried in
// order. latin-1 and iso-8859-1 are the same mapping; both names stay in
// the chain so the reported attempt list matches what callers expect.
var txtEncodings = []struct {
	name   string
	decode func([]byte) (string, bool)
}{
	{"utf-8", decodeUTF8},
	{"latin-1", decodeCharmap(charmap.ISO8859_1)},
	{"cp1252", decodeCharmap(charmap.Windows1252)},
	{"iso-8859-1", decodeCharmap(charmap.ISO8859_1)},
}

// extractTXT reads a text file, trying each encoding in the chain until
// one yields usable text. All attempts failing returns
// UndecodableEncodingError naming the attempted encodings.
func extractTXT(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read txt: %w", err)
	}

	for _, enc := range txtEncodings {
		text, ok := enc.decode(data)
		if !ok {
			continue
		}
		cleaned, lines := joinLines(text)
		return &Document{
			Format:   FormatTXT,
			Text:     cleaned,
			Segments: lines,
		}, nil
	}

	names := make([]string, len(txtEncodings))
	for i, enc := range txtEncodings {
		names[i] = enc.name
	}
	return nil, &UndecodableEncodingError{Path: path, Encodings: names}
}

func decodeUTF8(data []byte) (string, bool) {
	if !utf8.Valid(data) {
		return "", false
	}
	text := string(data)
	return text, usableText(text)
}

func decodeCharmap(cm *charmap.Charmap) func([]byte) (string, bool) {
	return func(data []byte) (string, bool) {
		decoded, err := cm.NewDecoder().Bytes(data)
		if err != nil {
			return "", false
		}
		text := string(decoded)
		return text, usableText(text)
	}
}

// usableText reports whether a decode attempt produced plausible text.
// Single-byte decoders map any input to some rune, so a decode only
// counts as successful when the result is free of replacement runes and
// of control characters other than tab, newline, and carriage return.
// Bytes in the C1 range fail here, which is what lets cp1252 take over
// from latin-1 for files using smart punctuation.
func usableText(s string) bool {
	for _, r := range s {
		if r == utf8.RuneError {
			return false
		}
		if r < 0x20 && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
		if r >= 0x7f && r <= 0x9f {
			return false
		}
	}
	return true
}

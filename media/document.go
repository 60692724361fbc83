package media

import (
	"fmt"
	"os"
	"strings"
)

// DocumentReader extracts plain text from an uploaded document file.
// Implementations return "" with an error when nothing could be read.
type DocumentReader interface {
	ExtractText(path string) (string, error)
}

// PlainTextReader handles .txt and .md uploads by reading them directly.
type PlainTextReader struct{}

var _ DocumentReader = PlainTextReader{}

// ExtractText reads the file contents as UTF-8 text.
func (PlainTextReader) ExtractText(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	text := strings.TrimSpace(string(b))
	if text == "" {
		return "", fmt.Errorf("document is empty")
	}
	return text, nil
}

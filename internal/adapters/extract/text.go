package extract

import (
	"context"
	"strings"

	"ordina/internal/ports"
)

// PlainText decodes text files, dropping invalid bytes instead of
// failing on them.
type PlainText struct{}

var _ ports.Extractor = (*PlainText)(nil)

// NewPlainText creates the plain-text extractor.
func NewPlainText() *PlainText { return &PlainText{} }

// Supports matches text MIME types and common text extensions.
func (e *PlainText) Supports(mimeType, ext string) bool {
	if strings.HasPrefix(mimeType, "text/") || mimeType == "application/json" {
		return true
	}
	switch ext {
	case ".txt", ".csv", ".md", ".log", ".json":
		return true
	}
	return false
}

// Extract decodes the bytes as UTF-8, ignoring invalid sequences.
func (e *PlainText) Extract(_ context.Context, _ string, data []byte) (string, error) {
	return strings.ToValidUTF8(string(data), ""), nil
}

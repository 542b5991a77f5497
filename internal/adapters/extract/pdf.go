package extract

import (
	"bytes"
	"context"
	"fmt"

	"github.com/ledongthuc/pdf"

	"ordina/internal/ports"
)

// PDF extracts plain text from PDF bytes.
type PDF struct{}

var _ ports.Extractor = (*PDF)(nil)

// NewPDF creates the PDF extractor.
func NewPDF() *PDF { return &PDF{} }

// Supports matches the PDF MIME type or extension.
func (e *PDF) Supports(mimeType, ext string) bool {
	return mimeType == "application/pdf" || ext == ".pdf"
}

// Extract returns the document's plain text. The parser panics on some
// malformed files, so the recover turns that into a regular error.
func (e *PDF) Extract(_ context.Context, name string, data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parse panic in %s: %v", name, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("pdf open %s: %w", name, err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("pdf text %s: %w", name, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("pdf read %s: %w", name, err)
	}
	return buf.String(), nil
}

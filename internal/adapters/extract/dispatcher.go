// Package extract routes downloaded blobs to per-format text extractors.
// MIME type is the primary dispatch key and file extension the fallback,
// because storage backends do not populate MIME reliably. Formats nobody
// claims yield an empty string: no content signal, not an error.
package extract

import (
	"context"
	"path/filepath"
	"strings"

	"ordina/internal/ports"
)

// Dispatcher implements ports.TextExtractor over a list of format
// extractors, consulted in registration order.
type Dispatcher struct {
	extractors []ports.Extractor
}

var _ ports.TextExtractor = (*Dispatcher)(nil)

// NewDispatcher builds a dispatcher over the given extractors.
func NewDispatcher(extractors ...ports.Extractor) *Dispatcher {
	return &Dispatcher{extractors: extractors}
}

// ExtractText finds the extractor for the blob and runs it. The MIME pass
// runs before the extension pass so a declared type always wins.
func (d *Dispatcher) ExtractText(ctx context.Context, name, mimeType string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))

	if mimeType != "" {
		for _, e := range d.extractors {
			if e.Supports(mimeType, "") {
				return e.Extract(ctx, name, data)
			}
		}
	}
	if ext != "" {
		for _, e := range d.extractors {
			if e.Supports("", ext) {
				return e.Extract(ctx, name, data)
			}
		}
	}
	return "", nil
}

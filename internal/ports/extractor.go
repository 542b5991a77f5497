package ports

import "context"

// TextExtractor is the dispatcher-level capability the pipeline consumes:
// route a downloaded blob to the right format extractor and return its
// text. Unsupported formats return "", not an error.
type TextExtractor interface {
	ExtractText(ctx context.Context, name, mimeType string, data []byte) (string, error)
}

// Extractor turns a downloaded blob into plain text. Implementations are
// pluggable per format; a dispatcher routes to them by MIME type first and
// file extension second. An empty string means "no content signal" and is
// never an error from the pipeline's point of view.
type Extractor interface {
	// Supports reports whether this extractor handles the given MIME type
	// or file extension (extension includes the leading dot, lowercased).
	Supports(mimeType, ext string) bool

	// Extract returns the text content of data. Errors only disable
	// content-based stages for the file; they never abort it.
	Extract(ctx context.Context, name string, data []byte) (string, error)
}

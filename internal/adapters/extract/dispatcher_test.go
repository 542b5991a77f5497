package extract

import (
	"context"
	"testing"
)

// stubExtractor claims a fixed MIME type and extension.
type stubExtractor struct {
	mime   string
	ext    string
	output string
	calls  int
}

func (s *stubExtractor) Supports(mimeType, ext string) bool {
	return (mimeType != "" && mimeType == s.mime) || (ext != "" && ext == s.ext)
}

func (s *stubExtractor) Extract(_ context.Context, _ string, _ []byte) (string, error) {
	s.calls++
	return s.output, nil
}

func TestDispatcher_MimeTypeWinsOverExtension(t *testing.T) {
	byMime := &stubExtractor{mime: "application/pdf", output: "from pdf"}
	byExt := &stubExtractor{ext: ".pdf", output: "from ext"}
	d := NewDispatcher(byExt, byMime)

	got, err := d.ExtractText(context.Background(), "doc.pdf", "application/pdf", nil)
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if got != "from pdf" {
		t.Errorf("the declared MIME type must win, got %q", got)
	}
	if byExt.calls != 0 {
		t.Errorf("extension extractor must not run, calls=%d", byExt.calls)
	}
}

func TestDispatcher_ExtensionFallback(t *testing.T) {
	byExt := &stubExtractor{ext: ".csv", output: "rows"}
	d := NewDispatcher(byExt)

	got, err := d.ExtractText(context.Background(), "data.CSV", "application/octet-stream", nil)
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if got != "rows" {
		t.Errorf("expected lowercased extension dispatch, got %q", got)
	}
}

func TestDispatcher_UnclaimedFormatIsNotAnError(t *testing.T) {
	d := NewDispatcher(&stubExtractor{mime: "application/pdf"})

	got, err := d.ExtractText(context.Background(), "movie.mkv", "video/x-matroska", nil)
	if err != nil {
		t.Fatalf("unclaimed formats must not error: %v", err)
	}
	if got != "" {
		t.Errorf("expected no content signal, got %q", got)
	}
}

func TestPlainText_Supports(t *testing.T) {
	e := NewPlainText()

	if !e.Supports("text/plain", "") {
		t.Error("expected text/* to be supported")
	}
	if !e.Supports("", ".csv") {
		t.Error("expected .csv to be supported")
	}
	if e.Supports("application/pdf", ".bin") {
		t.Error("unexpected support for binary formats")
	}
}

func TestPlainText_DropsInvalidUTF8(t *testing.T) {
	e := NewPlainText()

	got, err := e.Extract(context.Background(), "a.txt", []byte("ok\xff\xfe?"))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got != "ok?" {
		t.Errorf("expected invalid bytes dropped, got %q", got)
	}
}
